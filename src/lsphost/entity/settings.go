package entity

// SettingsConfigKey is the key that contains the language server launch settings.
const SettingsConfigKey = "powershell"

// Settings configures how the language server is located and started.
type Settings struct {
	ExecutablePath        string            `yaml:"executablePath" json:"executablePath,omitempty"`
	EditorServicesVersion string            `yaml:"editorServicesVersion" json:"editorServicesVersion,omitempty"`
	StartScriptPath       string            `yaml:"startScriptPath" json:"startScriptPath,omitempty"`
	BundledModulesPath    string            `yaml:"bundledModulesPath" json:"bundledModulesPath,omitempty"`
	HostName              string            `yaml:"hostName" json:"hostName,omitempty"`
	HostProfileID         string            `yaml:"hostProfileId" json:"hostProfileId,omitempty"`
	HostVersion           string            `yaml:"hostVersion" json:"hostVersion,omitempty"`
	ConsoleTitle          string            `yaml:"consoleTitle" json:"consoleTitle,omitempty"`
	Developer             DeveloperSettings `yaml:"developer" json:"developer,omitempty"`
}

// DeveloperSettings are the diagnostic knobs forwarded to the language server.
type DeveloperSettings struct {
	FeatureFlags           []string `yaml:"featureFlags" json:"featureFlags,omitempty"`
	EditorServicesLogLevel string   `yaml:"editorServicesLogLevel" json:"editorServicesLogLevel,omitempty"`
}

// DefaultSettings returns the settings used for any field left empty in configuration.
func DefaultSettings() Settings {
	return Settings{
		EditorServicesVersion: "1.5.1",
		HostName:              "Atom Host",
		HostProfileID:         "GitHub.Atom",
		HostVersion:           "0.0.0",
		ConsoleTitle:          "PowerShell Integrated Console",
	}
}

// WithDefaults fills every empty field from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.EditorServicesVersion == "" {
		s.EditorServicesVersion = d.EditorServicesVersion
	}
	if s.HostName == "" {
		s.HostName = d.HostName
	}
	if s.HostProfileID == "" {
		s.HostProfileID = d.HostProfileID
	}
	if s.HostVersion == "" {
		s.HostVersion = d.HostVersion
	}
	if s.ConsoleTitle == "" {
		s.ConsoleTitle = d.ConsoleTitle
	}
	return s
}
