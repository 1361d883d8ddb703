// Package ecode defines business error codes and the field messages shown
// next to invalid form inputs.
//
//	ecode.Text(ecode.NotFound)         // "Not found"
//	ecode.ToHTTPStatus(ecode.CSRFErr)  // 403
//	ecode.FieldIsRequired("text")      // "text required"
package ecode
