package httpapi

type checkRequest struct {
	QuoteID    *int    `json:"quoteId"`
	Answer     *string `json:"answer"`
	Difficulty *string `json:"difficulty"`
}

type checkResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAuthor string `json:"correctAuthor"`
	Source        string `json:"source,omitempty"`
	UserScore     int    `json:"userScore"`
	Total         int    `json:"total"`
	Message       string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
