// Package ltixml builds Canvas LTI 1.x tool configuration descriptors.
//
// A submission flows through three steps: field validators check the raw
// values, a tracker folds their results into one error summary, and the
// cartridge builder renders the XML document when nothing failed. The
// form.Handler ties these together and returns a single Response shape for
// both the initial form and every submission.
//
// Quick start:
//
//	xml, err := ltixml.BuildXML(ltixml.Configuration{
//		Title:        "Demo",
//		PrivacyLevel: ltixml.PrivacyAnonymous,
//		CustomFields: "foo=bar\nbaz=qux",
//	})
//
// The HTTP server, page renderer and terminal prompter live under pkg/.
package ltixml
