package dto

// QuizSubmissionRequest maps question ids to the chosen option index. A
// partially-filled answer set is accepted; unanswered questions never match.
type QuizSubmissionRequest struct {
	Answers map[string]int `json:"answers" validate:"required"`
}

// QuizScoreResponse is the evaluator's verdict.
type QuizScoreResponse struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}
