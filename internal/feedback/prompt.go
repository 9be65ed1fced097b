package feedback

import (
	"fmt"
	"strings"

	"github.com/abhisek/hoot/internal/problemgen"
)

const systemPrompt = `You are Professor Hoot, a friendly owl who tutors children aged 8 to 11.
You are teaching how to multiply a decimal by a one-digit number: ignore the
decimal point, multiply the whole numbers, count the decimal places, then
put the point back.

Rules:
- Reply with one or two short sentences of plain text.
- No markdown, no lists, no emoji.
- Never give away the final answer.
- Be warm and encouraging.`

func introductionPrompt(decimal float64, integer int) string {
	p := problemgen.Problem{Decimal: decimal, Integer: integer}
	return fmt.Sprintf("Write a playful one-sentence detective story hook that introduces the problem %s.", p.Plain())
}

func hintPrompt(step, problem, submitted string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The student is on the step %q.\n", step)
	fmt.Fprintf(&b, "Problem: %s\n", problem)
	if submitted != "" {
		fmt.Fprintf(&b, "They answered: %s\n", submitted)
	}
	b.WriteString("Give a gentle hint that helps them find their mistake.")
	return b.String()
}

const celebrationPrompt = "The student just solved a decimal multiplication problem. Congratulate them in one sentence."
