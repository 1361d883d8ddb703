// Package resp writes JSON responses for the machine facing endpoints.
//
//	resp.Success(w, map[string]any{"status": "ok"})
//	resp.Fail(w, resp.ServiceUnavailable("database unreachable"))
//
// Failure bodies carry the business code from the ecode package:
//
//	{"code": -503, "message": "database unreachable"}
package resp
