package domain

const (
	StatusOK    = 200
	StatusError = 500

	MessageOK     = "성공"
	MessageHealth = "status ok"
	DataHealth    = "Working"
)

// SummarizeRequest is the body accepted by the summarize endpoint.
type SummarizeRequest struct {
	PostID  int64   `json:"post_id"`
	Context *string `json:"context"`
}

// CommonResponse is the envelope returned for every outcome. Data is
// non-empty if and only if Status is StatusOK.
type CommonResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func Success(summary string) CommonResponse {
	return CommonResponse{
		Status:  StatusOK,
		Message: MessageOK,
		Data:    summary,
	}
}

func Failure(message string) CommonResponse {
	return CommonResponse{
		Status:  StatusError,
		Message: message,
	}
}

func Health() CommonResponse {
	return CommonResponse{
		Status:  StatusOK,
		Message: MessageHealth,
		Data:    DataHealth,
	}
}
