package response

import "github.com/syaifulazham/booth-visit/internal/domain"

type LoginResponse struct {
	Token string       `json:"token"`
	Admin domain.Admin `json:"admin"`
}
