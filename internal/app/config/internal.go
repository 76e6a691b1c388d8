package config

type InternalConfig struct {
	App   App
	JWT   JWT
	Admin Admin
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	RequestTimeoutInSeconds   int
	SessionExpiredTimeInHours int
	NotificationQueue         string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

// Admin holds the bootstrap credentials seeded by cmd/migration.
type Admin struct {
	Name     string
	Email    string
	Password string
	Phone    string
}
