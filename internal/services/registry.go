package services

// ServiceContainer bundles the service layer for handler wiring.
type ServiceContainer struct {
	Auth     AuthService
	User     UserService
	Practice PracticeService
	Form     FormService
}
