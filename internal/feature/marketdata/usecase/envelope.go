package usecase

import (
	"time"

	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
)

// Success は正常系のレスポンスエンベロープを生成します。
func Success(data any, cached bool, now time.Time) entity.Envelope {
	return entity.Envelope{
		Success:   true,
		Data:      data,
		Cached:    cached,
		Timestamp: now.UTC(),
		Status:    entity.StatusOK,
	}
}

// Failure はエラーをエンベロープに変換します。型付きでないエラーは内部エラーとして扱います。
func Failure(err error, now time.Time) entity.Envelope {
	pe := domain.AsProviderError(err)
	if pe == nil {
		pe = &domain.ProviderError{Kind: domain.KindInternal, Message: "unknown error"}
	}
	return entity.Envelope{
		Success: false,
		Error: &entity.ErrorDetail{
			Kind:           string(pe.Kind),
			Message:        pe.Message,
			UpstreamStatus: pe.UpstreamStatus,
		},
		Timestamp: now.UTC(),
		Status:    StatusFor(pe.Kind),
	}
}

// StatusFor はエラー種別をプロトコル非依存のステータスに分類します。
func StatusFor(k domain.Kind) entity.Status {
	switch k {
	case "":
		return entity.StatusOK
	case domain.KindNotFound:
		return entity.StatusNotFound
	case domain.KindInvalidParams:
		return entity.StatusBadRequest
	case domain.KindUpstream:
		return entity.StatusUpstream
	case domain.KindTimeout:
		return entity.StatusTimeout
	default:
		return entity.StatusInternal
	}
}
