package cli

import "regexp"

var tokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(ghp_|gho_|github_pat_|ghs_|ghu_)\S+`),
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(\s*[=:]\s*)\S+`),
}

// MaskSecrets는 dotfile 출력에서 토큰/키 패턴을 마스킹한다.
func MaskSecrets(s string) string {
	masked := tokenPatterns[0].ReplaceAllStringFunc(s, func(match string) string {
		for _, prefix := range []string{"ghp_", "gho_", "github_pat_", "ghs_", "ghu_"} {
			if len(match) >= len(prefix) && match[:len(prefix)] == prefix {
				return prefix + "****"
			}
		}
		return match
	})
	masked = tokenPatterns[1].ReplaceAllString(masked, "AKIA****")
	masked = tokenPatterns[2].ReplaceAllString(masked, "$1$2****")
	return masked
}
