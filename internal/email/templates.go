package email

import "fmt"

// VerificationSubject is the subject line for account verification mail.
const VerificationSubject = "Verify your PhysiqueCheck account"

// VerificationBody renders the verification-code email.
func VerificationBody(fullName, code string) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
	<h2>Welcome to PhysiqueCheck, %s!</h2>
	<p>Use the code below to verify your email address. It expires in 10 minutes.</p>
	<p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">%s</p>
	<p>If you did not create an account, you can safely ignore this message.</p>
</body>
</html>`, fullName, code)
}
