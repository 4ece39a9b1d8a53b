package config

type SecurityLevel int

const (
	SecurityPublic   SecurityLevel = iota // No authentication
	SecurityOptional                      // Token read when present
	SecurityAccess                        // Access token required
)

// EndpointSecurityConfig maps named HTTP routes to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	"health": SecurityPublic,

	// Career advice - readable without an account, admins see drafts
	"careerAdvice.list":   SecurityOptional,
	"careerAdvice.get":    SecurityOptional,
	"careerAdvice.create": SecurityAccess,
	"careerAdvice.update": SecurityAccess,
	"careerAdvice.delete": SecurityAccess,

	// Saved searches
	"savedSearches.list":   SecurityAccess,
	"savedSearches.create": SecurityAccess,
	"savedSearches.get":    SecurityAccess,
	"savedSearches.update": SecurityAccess,
	"savedSearches.delete": SecurityAccess,

	// Applications
	"applications.list":         SecurityAccess,
	"applications.create":       SecurityAccess,
	"applications.get":          SecurityAccess,
	"applications.update":       SecurityAccess,
	"applications.delete":       SecurityAccess,
	"applications.updateStatus": SecurityAccess,
	"applications.bulkStatus":   SecurityAccess,

	// Notifications
	"notifications.list":     SecurityAccess,
	"notifications.markRead": SecurityAccess,
}

// GetSecurityLevel returns the security level for a given route name
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
