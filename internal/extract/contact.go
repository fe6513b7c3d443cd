package extract

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns cover the common formats: US with optional country code,
// international, parenthesized area code, plain dashed. A candidate is only
// kept when its digit form is at least ten digits long, which filters out
// dates and short numeric fragments.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?1?\s*\(?[0-9]{3}\)?[\s.-]?[0-9]{3}[\s.-]?[0-9]{4}`),
	regexp.MustCompile(`\+?[0-9]{1,3}[\s.-]?[0-9]{1,4}[\s.-]?[0-9]{1,4}[\s.-]?[0-9]{1,9}`),
	regexp.MustCompile(`\([0-9]{3}\)\s*[0-9]{3}-[0-9]{4}`),
	regexp.MustCompile(`[0-9]{3}-[0-9]{3}-[0-9]{4}`),
}

var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"]+`)

// meetingHosts identify video-call join URLs in free text.
var meetingHosts = []string{
	"meet.google.com",
	"zoom.us",
	"teams.microsoft.com",
	"webex.com",
}

// ExtractEmails returns the email addresses found in text, in order of first
// occurrence, deduplicated case-insensitively.
func ExtractEmails(text string) []string {
	if text == "" {
		return nil
	}

	var emails []string
	seen := make(map[string]bool)
	for _, m := range emailPattern.FindAllString(text, -1) {
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		emails = append(emails, m)
	}
	return emails
}

// ExtractPhoneNumbers returns phone-number candidates found in text, in their
// original matched form, deduplicated on the digit-stripped representation in
// first-seen order.
func ExtractPhoneNumbers(text string) []string {
	if text == "" {
		return nil
	}

	var numbers []string
	seen := make(map[string]bool)
	for _, pattern := range phonePatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			cleaned := nonPhoneChars.ReplaceAllString(m, "")
			if len(cleaned) < 10 || seen[cleaned] {
				continue
			}
			seen[cleaned] = true
			numbers = append(numbers, strings.TrimSpace(m))
		}
	}
	return numbers
}

// ExtractMeetingLinks returns video-call join URLs found in text, in order of
// first occurrence, deduplicated.
func ExtractMeetingLinks(text string) []string {
	if text == "" {
		return nil
	}

	var links []string
	seen := make(map[string]bool)
	for _, u := range urlPattern.FindAllString(text, -1) {
		u = strings.TrimRight(u, ".,;)")
		if !isMeetingLink(u) || seen[u] {
			continue
		}
		seen[u] = true
		links = append(links, u)
	}
	return links
}

func isMeetingLink(u string) bool {
	for _, host := range meetingHosts {
		if strings.Contains(u, host) {
			return true
		}
	}
	return false
}

// mergeUnique appends the members of each list in order, dropping empties and
// values already present (case-insensitively).
func mergeUnique(lists ...[]string) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, v := range list {
			key := strings.ToLower(v)
			if v == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, v)
		}
	}
	return merged
}
