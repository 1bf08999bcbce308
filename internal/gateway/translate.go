package gateway

import (
	"errors"
	"fmt"

	"summarygateway/internal/domain"
	"summarygateway/internal/summarizer"
)

const (
	messageTransport    = "백엔드 서버에 연결할 수 없습니다"
	messageStatus       = "백엔드 서버 오류"
	messageEmptyContent = "백엔드 응답에서 content를 찾을 수 없습니다."
	messageInvalid      = "잘못된 요청입니다"
	messageUnexpected   = "요청 처리 중 오류가 발생했습니다"
)

// Translate converts any failure into the failure envelope. Data is always
// empty in the result.
func Translate(err error) domain.CommonResponse {
	if err == nil {
		err = summarizer.ErrUnexpected
	}

	switch summarizer.Classify(err) {
	case summarizer.KindTransport:
		var transportErr *summarizer.TransportError
		errors.As(err, &transportErr)

		return domain.Failure(fmt.Sprintf("%s: %v", messageTransport, transportErr.Err))
	case summarizer.KindBackendStatus:
		var statusErr *summarizer.StatusError
		errors.As(err, &statusErr)

		if statusErr.Body == "" {
			return domain.Failure(fmt.Sprintf("%s (%d)", messageStatus, statusErr.Code))
		}

		return domain.Failure(fmt.Sprintf("%s (%d): %s", messageStatus, statusErr.Code, statusErr.Body))
	case summarizer.KindEmptyContent:
		return domain.Failure(messageEmptyContent)
	case summarizer.KindUnexpected:
		if errors.Is(err, summarizer.ErrInvalidRequest) {
			return domain.Failure(fmt.Sprintf("%s: %v", messageInvalid, err))
		}

		return domain.Failure(fmt.Sprintf("%s: %v", messageUnexpected, err))
	}

	return domain.Failure(messageUnexpected)
}
