package statement

import "strings"

// PartyInfo is the decomposed composite partner field. Empty string means
// the statement carried no value for that part.
type PartyInfo struct {
	Name    string
	Code    string
	Account string
}

const (
	accountPrefix = "LT"
	accountMinLen = 20
	codeMinLen    = 5  // exclusive
	codeMaxLen    = 15 // exclusive
)

// ExtractParty decomposes a pipe-delimited partner field into name,
// business code, and bank account. The first segment is always the name;
// later segments are classified by shape, not position, and a later
// plausible value overwrites an earlier one.
func ExtractParty(field string) PartyInfo {
	segments := strings.Split(field, "|")

	var p PartyInfo
	p.Name = strings.TrimSpace(strings.ReplaceAll(segments[0], `"`, ""))

	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		switch {
		case strings.HasPrefix(seg, accountPrefix) && len(seg) >= accountMinLen:
			p.Account = seg
		case !strings.Contains(seg, "XXX") &&
			!strings.HasPrefix(seg, accountPrefix) &&
			len(seg) > codeMinLen && len(seg) < codeMaxLen:
			p.Code = seg
		}
	}
	return p
}
