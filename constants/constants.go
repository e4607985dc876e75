package constants

import (
	"os"
	"strconv"
)

// Clockwise from C. Each entry is a fifth above the previous one.
var MajorKeys = [12]string{
	"C", "G", "D", "A", "E", "B", "F♯/G♭", "D♭", "A♭", "E♭", "B♭", "F",
}

// Clockwise from Am, index-aligned with MajorKeys as relative pairs.
var MinorKeys = [12]string{
	"Am", "Em", "Bm", "F♯m", "C♯m", "G♯m", "D♯m/E♭m", "B♭m", "Fm", "Cm", "Gm", "Dm",
}

const NumKeys = 12

const ScaleSize = 7

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetLogPath is empty unless LOG_PATH is set, meaning stdout only.
func GetLogPath() string {
	return os.Getenv("LOG_PATH")
}

func GetHoverSettleMillis() int {
	ms, err := strconv.Atoi(os.Getenv("HOVER_SETTLE_MS"))
	if err != nil || ms <= 0 {
		return 250
	}
	return ms
}
