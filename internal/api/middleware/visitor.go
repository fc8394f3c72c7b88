package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/syaifulazham/booth-visit/internal/api/handler/v1/response"
)

// CtxKeyVisitorCookieID is where RequireCookie stores the visitor's
// cookie token.
const CtxKeyVisitorCookieID = "visitorCookieID"

var errMissingVisitorCookie = errors.New("visitor cookie missing, registration required")

type VisitorIdentifier struct {
	cookieName string
}

func NewVisitorIdentifier(cookieName string) *VisitorIdentifier {
	return &VisitorIdentifier{
		cookieName: cookieName,
	}
}

// RequireCookie rejects requests without the visitor identity cookie.
// Whether the token still maps to a visitor is decided downstream.
func (i *VisitorIdentifier) RequireCookie() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, err := ctx.Cookie(i.cookieName)
		if err != nil || cookie == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingVisitorCookie))
			ctx.Abort()

			return
		}

		ctx.Set(CtxKeyVisitorCookieID, cookie)
	}
}
