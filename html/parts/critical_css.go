package parts

import (
	"os"
	"log"
)

// GetCriticalCSS reads the panel stylesheet and returns it as a string for
// inlining into page heads.
func GetCriticalCSS() (string, error) {
	css, err := os.ReadFile("assets/kyuna.css")
	if err != nil {
		log.Println("Critical CSS error:", err)
		return "", err
	}
	return string(css), nil
}
