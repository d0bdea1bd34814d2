package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hackforge/hackathon-api/internal/api/handler/v1/response"
	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/pkg/jwthelper"
)

const identityKey = "identity"

// tokenQueryParam lets browser websocket clients, which cannot set headers, authenticate.
const tokenQueryParam = "access_token"

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := extractToken(ctx)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		claims, err := jwthelper.ParseToken(token, a.signingKey)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		SetIdentity(ctx, claims.Identity())
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) (string, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		if token := ctx.Query(tokenQueryParam); token != "" {
			return token, nil
		}
		return "", errors.New("missing Authorization header")
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid Authorization format")
	}

	return strings.TrimSpace(token), nil
}

func IdentityFromContext(ctx *gin.Context) (domain.Identity, bool) {
	value, ok := ctx.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}

	identity, ok := value.(domain.Identity)
	return identity, ok
}

// SetIdentity stores the caller identity read back by IdentityFromContext.
func SetIdentity(ctx *gin.Context, identity domain.Identity) {
	ctx.Set(identityKey, identity)
}
