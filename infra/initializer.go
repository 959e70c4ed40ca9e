package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize loads the given env files (".env" by default) without overriding
// variables that are already set. It reports whether any file was read.
func Initialize(files ...string) bool {
	if len(files) == 0 {
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		log.Printf("No env file loaded (%v); using environment variables", files)
		return false
	}
	return true
}
