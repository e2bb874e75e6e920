// Package httpapi wires the engine's registration, login, and identity
// operations to their JSON endpoints:
//
//	POST /api/users   register; 200 {"token":...}
//	POST /api/auth    login; 200 {"token":...}
//	GET  /api/auth    guarded; 200 caller's record, password omitted
//
// Validation and duplicate failures render as 400 {"errors":[{"msg":...}]},
// unexpected failures as 500 plain text. Status/message translation from the
// engine's error taxonomy happens here and nowhere else.
package httpapi
