package cartridge

import "encoding/xml"

// Namespaces declared on the cartridge_basiclti_link root.
const (
	NamespaceCC             = "http://www.imsglobal.org/xsd/imslticc_v1p0"
	NamespaceBasicLTI       = "http://www.imsglobal.org/xsd/imsbasiclti_v1p0"
	NamespaceLTIConfigMgmt  = "http://www.imsglobal.org/xsd/imslticm_v1p0"
	NamespaceLTICommonProfl = "http://www.imsglobal.org/xsd/imslticp_v1p0"
	NamespaceXSI            = "http://www.w3.org/2001/XMLSchema-instance"

	schemaLocation = "http://www.imsglobal.org/xsd/imslticc_v1p0 http://www.imsglobal.org/xsd/lti/ltiv1p0/imslticc_v1p0.xsd " +
		"http://www.imsglobal.org/xsd/imsbasiclti_v1p0 http://www.imsglobal.org/xsd/lti/ltiv1p0/imsbasiclti_v1p0.xsd " +
		"http://www.imsglobal.org/xsd/imslticm_v1p0 http://www.imsglobal.org/xsd/lti/ltiv1p0/imslticm_v1p0.xsd " +
		"http://www.imsglobal.org/xsd/imslticp_v1p0 http://www.imsglobal.org/xsd/lti/ltiv1p0/imslticp_v1p0.xsd"
)

// Platform is the extensions platform understood by Canvas.
const Platform = "canvas.instructure.com"

// Identifier references emitted for the bundle and icon resources.
const (
	BundleRef = "BLTI001_Bundle"
	IconRef   = "BLTI001_Icon"
)

type document struct {
	XMLName        xml.Name   `xml:"cartridge_basiclti_link"`
	Xmlns          string     `xml:"xmlns,attr"`
	XmlnsBLTI      string     `xml:"xmlns:blti,attr"`
	XmlnsLTICM     string     `xml:"xmlns:lticm,attr"`
	XmlnsLTICP     string     `xml:"xmlns:lticp,attr"`
	XmlnsXSI       string     `xml:"xmlns:xsi,attr"`
	SchemaLocation string     `xml:"xsi:schemaLocation,attr"`
	Title          string     `xml:"blti:title"`
	Description    string     `xml:"blti:description"`
	LaunchURL      string     `xml:"blti:launch_url"`
	Custom         custom     `xml:"blti:custom"`
	Extensions     extensions `xml:"blti:extensions"`
	Bundle         reference  `xml:"cartridge_bundle"`
	Icon           reference  `xml:"cartridge_icon"`
}

type custom struct {
	Properties []property `xml:"lticm:property"`
}

// extensions carries the tool level settings as plain elements followed by
// one options block per placement.
type extensions struct {
	Platform        string    `xml:"platform,attr"`
	Domain          string    `xml:"domain"`
	PrivacyLevel    string    `xml:"privacy_level"`
	OAuthCompliant  string    `xml:"oauth_compliant"`
	SelectionHeight string    `xml:"selection_height"`
	SelectionWidth  string    `xml:"selection_width"`
	Visibility      string    `xml:"visibility"`
	Options         []options `xml:"lticm:options"`
}

type options struct {
	Name       string     `xml:"name,attr"`
	Properties []property `xml:"lticm:property"`
}

type property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type reference struct {
	IdentifierRef string `xml:"identifierref,attr"`
}
