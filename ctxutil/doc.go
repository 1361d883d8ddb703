// Package ctxutil stores request-scoped values on context.Context.
//
// Values set through a context that embeds a *gin.Context are mirrored into
// the gin keys, so handlers and services see the same data:
//
//	ctx := ctxutil.WithGinContext(c.Request.Context(), c)
//	ctx = ctxutil.SetUserID(ctx, user.ID)
//	uid := ctxutil.GetUserID(ctx)
package ctxutil
