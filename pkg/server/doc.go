// Package server exposes the configuration form over HTTP.
//
// Routes:
//
//	GET  /              initial form
//	POST /              submitted form (urlencoded or multipart)
//	GET|POST /xml       document only, 422 with the error text on failure
//	GET  /openapi.yaml  form definition
//	GET  /healthz       liveness
//	GET  /assets/...    page stylesheet
//
// The form routes honour ?format= (html, xml, json) through a render.Registry.
package server
