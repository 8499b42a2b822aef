package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pivotal-cf/pass-audit/analyzer"
	"github.com/pivotal-cf/pass-audit/oracle"
	"github.com/pivotal-cf/pass-audit/strength"
)

const maxPatternsShown = 3

func showStrengthReport(result analyzer.Result, password string, show bool) {
	display := strings.Repeat("*", utf8.RuneCountInString(password))
	if show {
		display = password
	}

	hash := result.Digest.Hex()
	color := scoreColor(result.Score)

	fmt.Println(bold("Password:"), display)
	fmt.Println(bold("Length:"), result.Length, "characters")
	fmt.Println(bold("Strength:"), color(fmt.Sprintf("%s (%d/4)", result.Score, result.Score)))
	fmt.Println(bold("Entropy:"), fmt.Sprintf("%.1f bits (%s)", result.Entropy, strength.ScoreForEntropy(result.Entropy, result.IsBreached)))
	fmt.Println(bold("SHA-256 Hash:"), hash[:16]+"..."+hash[len(hash)-16:])

	if result.IsBreached {
		fmt.Println()
		fmt.Println(red("[ALERT]"), red("This is a commonly used password!"))
		fmt.Println("        It appears in known password breach databases and should not be used.")
	}

	if len(result.Feedback) > 0 {
		fmt.Println()
		fmt.Println(bold("Security Recommendations:"))
		for i, suggestion := range result.Feedback {
			fmt.Printf("  %d. %s\n", i+1, suggestion)
		}
	}

	if crackTime, ok := result.CrackTimes[oracle.OfflineSlowHashing]; ok {
		fmt.Println()
		fmt.Println(bold("Estimated Crack Time (offline attack):"))
		fmt.Println(" ", crackTime)
	}

	if len(result.Patterns) > 0 {
		fmt.Println()
		fmt.Println(bold("Detected Patterns:"))
		for i, p := range result.Patterns {
			if i == maxPatternsShown {
				break
			}
			if show {
				fmt.Printf("  - %s: '%s'\n", p.Kind, p.Token)
			} else {
				fmt.Printf("  - %s\n", p.Kind)
			}
		}
	}
}
