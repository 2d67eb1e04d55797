package services

// ServiceContainer groups all service facades for injection into route
// registration.
type ServiceContainer struct {
	User      UserSvcFacade
	Token     TokenSvcFacade
	Diagnosis DiagnosisSvcFacade
	Voice     VoiceSvcFacade
	Weather   WeatherSvcFacade
}
