package model

// PrivacyLevel controls which user details the platform shares with the tool
// at launch.
type PrivacyLevel string

const (
	PrivacyPublic    PrivacyLevel = "public"
	PrivacyNameOnly  PrivacyLevel = "name_only"
	PrivacyAnonymous PrivacyLevel = "anonymous"
)

// PrivacyLevels lists the accepted privacy levels in form order. The first
// entry is the default.
func PrivacyLevels() []PrivacyLevel {
	return []PrivacyLevel{PrivacyPublic, PrivacyNameOnly, PrivacyAnonymous}
}

// Valid reports whether p is one of the known privacy levels.
func (p PrivacyLevel) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyNameOnly, PrivacyAnonymous:
		return true
	default:
		return false
	}
}

// OrDefault returns p when valid and PrivacyPublic otherwise.
func (p PrivacyLevel) OrDefault() PrivacyLevel {
	if p.Valid() {
		return p
	}
	return PrivacyPublic
}

// Visibility restricts which course members see the tool's navigation entry.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityMembers Visibility = "members"
	VisibilityAdmins  Visibility = "admins"
)

// Visibilities lists the accepted visibility values in form order. The first
// entry is the default.
func Visibilities() []Visibility {
	return []Visibility{VisibilityPublic, VisibilityMembers, VisibilityAdmins}
}

// Valid reports whether v is one of the known visibility values.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityMembers, VisibilityAdmins:
		return true
	default:
		return false
	}
}

// OrDefault returns v when valid and VisibilityPublic otherwise.
func (v Visibility) OrDefault() Visibility {
	if v.Valid() {
		return v
	}
	return VisibilityPublic
}
