package config

// GetAuthSkipperPaths returns a list of paths to skip the session gate for
func GetAuthSkipperPaths() []string {
	// Public paths (login screen and health check only; everything else
	// needs an operator session)
	return []string{"/login", "/logout", "/healthz"}
}
