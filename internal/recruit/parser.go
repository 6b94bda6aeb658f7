package recruit

import "strings"

// ParseInvitees turns raw multi-line invitee text into ordered lines.
// One candidate per non-empty line; the first comma separates the
// identifier from an optional display name. A leading "(" on the
// identifier and a trailing ")" on the name are stripped to tolerate
// copy-pasted parenthetical formatting. No identifier validation
// happens here; malformed entries fail during resolution instead.
func ParseInvitees(raw string) []InviteeLine {
	var invitees []InviteeLine

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		identifier := line
		name := ""
		if i := strings.Index(line, ","); i >= 0 {
			identifier = strings.TrimSpace(line[:i])
			name = strings.TrimSpace(line[i+1:])
		}

		identifier = strings.TrimSpace(strings.TrimPrefix(identifier, "("))
		name = strings.TrimSpace(strings.TrimSuffix(name, ")"))

		invitees = append(invitees, InviteeLine{
			RawIdentifier: identifier,
			DisplayName:   name,
		})
	}

	return invitees
}
