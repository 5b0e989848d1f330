package rest

type AddSubscriberRequest struct {
	ChatID int64 `json:"chat_id"`
}

type AddSubscriberResponse struct {
	ChatID int64  `json:"chat_id"`
	Status string `json:"status"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
