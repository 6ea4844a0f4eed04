package auth_case

// SessionTracker ist der Redis-Eintrag einer aktiven Sitzung.
type SessionTracker struct {
	JTI     string `json:"jti"`
	UserID  string `json:"user_id"`
	Token   string `json:"token"`
	LoginAt string `json:"login_at"`
}
