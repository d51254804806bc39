package main

import (
	"os"

	"lexaid/backend/internal/app"
)

// @title           LexAid Backend API
// @version         1.0
// @description     Conversational assistant and case record API for self-represented litigants.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
