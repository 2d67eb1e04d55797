package repositories

// RepositoryContainer groups all repository implementations for injection
// into the service layer.
type RepositoryContainer struct {
	User      UserRepository
	Diagnosis DiagnosisRepository
	Voice     VoiceRepository
	Weather   WeatherRepository
}
