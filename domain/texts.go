package domain

// User-facing texts of the relay.
const (
	AskForQuestionText  = "Please write your question **after** the mention 🙂"
	NoReplyText         = "No answer received."
	BackendFailureText  = "Failed to fetch the answer."
	ThreadFailureText   = "⚠️ Something went wrong while creating the AI thread."
	FollowUpFailureText = "⚠️ Error while fetching the AI answer."
)
