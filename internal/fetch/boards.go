package fetch

import (
	"net/url"
	"strings"
)

// Board represents a known job board or ATS platform.
type Board string

const (
	// BoardGreenhouse is the Greenhouse ATS
	BoardGreenhouse Board = "greenhouse"
	// BoardLever is the Lever ATS
	BoardLever Board = "lever"
	// BoardWorkday is the Workday ATS
	BoardWorkday Board = "workday"
	// BoardHeadHunter is hh.ru
	BoardHeadHunter Board = "headhunter"
	// BoardIndeed is indeed.com
	BoardIndeed Board = "indeed"
	// BoardUnknown is any unrecognized host
	BoardUnknown Board = "unknown"
)

// boardHosts maps host substrings to boards, checked in order.
var boardHosts = []struct {
	fragment string
	board    Board
}{
	{"greenhouse.io", BoardGreenhouse},
	{"lever.co", BoardLever},
	{"myworkdayjobs.com", BoardWorkday},
	{"workday.com", BoardWorkday},
	{"hh.ru", BoardHeadHunter},
	{"hh.kz", BoardHeadHunter},
	{"indeed.com", BoardIndeed},
}

// DetectBoard identifies the job board from a posting URL.
func DetectBoard(urlStr string) Board {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return BoardUnknown
	}
	host := strings.ToLower(parsed.Host)
	for _, bh := range boardHosts {
		if strings.Contains(host, bh.fragment) {
			return bh.board
		}
	}
	return BoardUnknown
}

// SelectorsFor returns content selectors tuned for a board, falling
// back to generic job-page selectors.
func SelectorsFor(board Board) []string {
	switch board {
	case BoardGreenhouse:
		return []string{".job__description.body", ".job__description", "#content"}
	case BoardLever:
		return []string{".posting-page", ".posting-description", ".content"}
	case BoardWorkday:
		return []string{"[data-automation-id='jobDescription']", ".job-description"}
	case BoardHeadHunter:
		return []string{"[data-qa='vacancy-description']", ".vacancy-description", ".g-user-content"}
	case BoardIndeed:
		return []string{"#jobDescriptionText", ".jobsearch-jobDescriptionText"}
	default:
		return []string{
			".job-description",
			"#job-description",
			".job-details",
			"[data-testid='job-description']",
			"main",
			"article",
			".content",
			"#content",
		}
	}
}
