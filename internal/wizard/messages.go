package wizard

import "fmt"

const (
	msgLoading     = "Loading our next adventure..."
	msgSkipHide    = "Since there are no decimals in this problem, we can skip Step 1 and go straight to multiplying!"
	msgHidePrompt  = "Step 1: To make this easier, let's rewrite the problem without any dots. Can you type the whole numbers below?"
	msgHideRetry   = "Not quite! Just remove the dots. For example, 3.9 becomes 39."
	msgTensSuccess = "Awesome! You solved the multiplication. Now, look at the ORIGINAL problem. How many decimal places do we have?"
	msgDirectOK    = "Correct! Now, look at the ORIGINAL problem. How many numbers are sitting behind a decimal point?"
)

func msgHideSuccess(d Derived) string {
	return fmt.Sprintf("Perfect! Now we just multiply %d by %d. I can help you break it down!", d.First, d.Second)
}

func msgOnesSuccess(d Derived) string {
	return fmt.Sprintf("Right! %d × %d = %d. We write down the %d and carry the %d. Now for the next part!",
		d.OnesDigit, d.Second, d.OnesProduct, d.WrittenDigit, d.Carry)
}

func msgOnesRetry(d Derived) string {
	return fmt.Sprintf("Try again! What is %d × %d?", d.OnesDigit, d.Second)
}

func msgTensRetry(d Derived) string {
	return fmt.Sprintf("Careful! Multiply %d × %d, then add the carry (%d).", d.TensDigit, d.Second, d.Carry)
}

func msgCountSuccess(d Derived) string {
	return fmt.Sprintf("Exactly! We have %d decimal place(s). Now, take your answer (%d) and move the decimal point %d hop(s) to the left.",
		d.TotalDecimalPlaces, d.IntProduct, d.TotalDecimalPlaces)
}

func msgHopsRetry(moved, need int) string {
	return fmt.Sprintf("Almost! You moved it %d times, but we need %d hops. Try again!", moved, need)
}
