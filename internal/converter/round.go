package converter

import (
	"wordle_backend/internal/api/dto/round"
	"wordle_backend/internal/model"
)

func ToStartResponse(res model.RoundStartResult) round.StartResponse {
	return round.StartResponse{
		Accepted:    res.Accepted,
		MaxAttempts: res.MaxAttempts,
		Reason:      res.Reason,
	}
}

func ToGuessResponse(res model.GuessResult) round.GuessResponse {
	letters := make([]round.LetterResult, len(res.Letters))
	for i, l := range res.Letters {
		letters[i] = round.LetterResult{
			Letter: l.Letter,
			Status: string(l.Status),
		}
	}

	return round.GuessResponse{
		Letters:      letters,
		Status:       string(res.Status),
		AttemptsUsed: res.AttemptsUsed,
		AttemptsLeft: res.AttemptsLeft,
		Payout:       res.Payout,
	}
}

func ToPowerUpResponse(res model.PowerUpResult) round.PowerUpResponse {
	return round.PowerUpResponse{
		Success: res.Success,
		Type:    string(res.Type),
		Info:    res.Info,
	}
}

func ToFinalizeResponse(res model.FinalizeResult) round.FinalizeResponse {
	return round.FinalizeResponse{
		Message: res.Message,
		Net:     res.Net,
		Word:    res.Word,
	}
}
