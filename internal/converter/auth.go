package converter

import (
	"wordle_backend/internal/api/dto/auth"
	"wordle_backend/internal/model"
)

func RegisterRequestToUserModel(req *auth.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}

func ToAuthResponse(data model.AuthData) auth.AuthResponse {
	return auth.AuthResponse{
		AccessToken: data.AccessToken,
		WalletKey:   data.WalletKey,
	}
}
