package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/syaifulazham/booth-visit/internal/api/handler/v1/response"
	"github.com/syaifulazham/booth-visit/internal/pkg/jwthelper"
)

// CtxKeyAdminID is where VerifyJWT stores the authenticated admin's ID.
const CtxKeyAdminID = "adminID"

var (
	errMissingAuthHeader = errors.New("missing or malformed Authorization header")
	errInvalidToken      = errors.New("invalid or expired token")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT authenticates admin requests from a bearer token. The
// token is additionally bound to the user agent it was issued to.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingAuthHeader))
			ctx.Abort()

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))
			ctx.Abort()

			return
		}

		if claims.UserAgent != ctx.Request.UserAgent() {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))
			ctx.Abort()

			return
		}

		ctx.Set(CtxKeyAdminID, claims.AdminID)
	}
}
