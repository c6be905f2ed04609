package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"mediaguard/internal/domain"
)

// PlaceholderTopicARN is the value shipped in sample deployments; it must be replaced before use.
const PlaceholderTopicARN = "Your SNS Topic ARN here"

// Config holds all application configuration.
type Config struct {
	AWS          AWSConfig
	Notifier     NotifierConfig
	Notification NotificationConfig
	Uploader     UploaderConfig
	Server       ServerConfig
	Log          LogConfig
}

// AWSConfig holds shared AWS client settings.
type AWSConfig struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// NotifierConfig holds the classification rule and alert destination.
type NotifierConfig struct {
	TopicARN            string  `mapstructure:"topic_arn"`
	TargetLabel         string  `mapstructure:"target_label"`
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	MaxLabels           int     `mapstructure:"max_labels"`
	Subject             string  `mapstructure:"subject"`
}

// NotificationConfig selects and configures the alert delivery provider.
type NotificationConfig struct {
	Provider       string   `mapstructure:"provider"`
	SESFromAddress string   `mapstructure:"ses_from_address"`
	SESToAddresses []string `mapstructure:"ses_to_addresses"`
}

// UploaderConfig holds defaults for the uploader CLI.
type UploaderConfig struct {
	DefaultFile   string `mapstructure:"default_file"`
	DefaultBucket string `mapstructure:"default_bucket"`
}

// ServerConfig holds local replay server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the MEDIAGUARD_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MEDIAGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AWS defaults
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")

	// Notifier defaults
	v.SetDefault("notifier.topic_arn", PlaceholderTopicARN)
	v.SetDefault("notifier.target_label", "Cat")
	v.SetDefault("notifier.confidence_threshold", 90.0)
	v.SetDefault("notifier.max_labels", 5)
	v.SetDefault("notifier.subject", "Non-Cat Image Alert")

	// Notification defaults
	v.SetDefault("notification.provider", string(domain.NotificationProviderSNS))
	v.SetDefault("notification.ses_from_address", "")
	v.SetDefault("notification.ses_to_addresses", "")

	// Uploader defaults
	v.SetDefault("uploader.default_file", "images/cat1.jpeg")
	v.SetDefault("uploader.default_bucket", "cats-only-bucket")

	v.SetDefault("server.port", ":8080")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	envBindings := map[string]string{
		"aws.region":                    "MEDIAGUARD_AWS_REGION",
		"aws.endpoint":                  "MEDIAGUARD_AWS_ENDPOINT",
		"aws.access_key":                "MEDIAGUARD_AWS_ACCESS_KEY",
		"aws.secret_key":                "MEDIAGUARD_AWS_SECRET_KEY",
		"notifier.topic_arn":            "MEDIAGUARD_NOTIFIER_TOPIC_ARN",
		"notifier.target_label":         "MEDIAGUARD_NOTIFIER_TARGET_LABEL",
		"notifier.confidence_threshold": "MEDIAGUARD_NOTIFIER_CONFIDENCE_THRESHOLD",
		"notifier.max_labels":           "MEDIAGUARD_NOTIFIER_MAX_LABELS",
		"notifier.subject":              "MEDIAGUARD_NOTIFIER_SUBJECT",
		"notification.provider":         "MEDIAGUARD_NOTIFICATION_PROVIDER",
		"notification.ses_from_address": "MEDIAGUARD_NOTIFICATION_SES_FROM_ADDRESS",
		"notification.ses_to_addresses": "MEDIAGUARD_NOTIFICATION_SES_TO_ADDRESSES",
		"uploader.default_file":         "MEDIAGUARD_UPLOADER_DEFAULT_FILE",
		"uploader.default_bucket":       "MEDIAGUARD_UPLOADER_DEFAULT_BUCKET",
		"server.port":                   "MEDIAGUARD_SERVER_PORT",
		"log.level":                     "MEDIAGUARD_LOG_LEVEL",
		"log.format":                    "MEDIAGUARD_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.AWS = AWSConfig{
		Region:    v.GetString("aws.region"),
		Endpoint:  v.GetString("aws.endpoint"),
		AccessKey: v.GetString("aws.access_key"),
		SecretKey: v.GetString("aws.secret_key"),
	}
	cfg.Notifier = NotifierConfig{
		TopicARN:            v.GetString("notifier.topic_arn"),
		TargetLabel:         v.GetString("notifier.target_label"),
		ConfidenceThreshold: v.GetFloat64("notifier.confidence_threshold"),
		MaxLabels:           v.GetInt("notifier.max_labels"),
		Subject:             v.GetString("notifier.subject"),
	}
	cfg.Notification = NotificationConfig{
		Provider:       strings.ToLower(v.GetString("notification.provider")),
		SESFromAddress: v.GetString("notification.ses_from_address"),
		SESToAddresses: splitList(v.GetString("notification.ses_to_addresses")),
	}
	cfg.Uploader = UploaderConfig{
		DefaultFile:   v.GetString("uploader.default_file"),
		DefaultBucket: v.GetString("uploader.default_bucket"),
	}
	cfg.Server = ServerConfig{
		Port: v.GetString("server.port"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}

// Validate checks the deployment values the notifier depends on.
func (c *Config) Validate() error {
	if err := c.Notifier.Validate(); err != nil {
		return err
	}

	provider := domain.NotificationProvider(c.Notification.Provider)
	if !provider.IsValid() {
		return fmt.Errorf("%w: unknown notification provider %q", domain.ErrInvalidConfig, c.Notification.Provider)
	}
	switch provider {
	case domain.NotificationProviderSNS:
		if c.Notifier.TopicARN == "" || c.Notifier.TopicARN == PlaceholderTopicARN {
			return fmt.Errorf("%w: notifier.topic_arn must be set to a real topic", domain.ErrInvalidConfig)
		}
	case domain.NotificationProviderSES:
		if c.Notification.SESFromAddress == "" || len(c.Notification.SESToAddresses) == 0 {
			return fmt.Errorf("%w: ses provider requires from and to addresses", domain.ErrInvalidConfig)
		}
	}
	return nil
}

// Validate checks the classification rule bounds.
func (n *NotifierConfig) Validate() error {
	if n.TargetLabel == "" {
		return fmt.Errorf("%w: notifier.target_label is empty", domain.ErrInvalidConfig)
	}
	if n.ConfidenceThreshold < 0 || n.ConfidenceThreshold > 100 {
		return fmt.Errorf("%w: notifier.confidence_threshold %.2f outside [0,100]", domain.ErrInvalidConfig, n.ConfidenceThreshold)
	}
	if n.MaxLabels < 1 || n.MaxLabels > 1000 {
		return fmt.Errorf("%w: notifier.max_labels %d outside [1,1000]", domain.ErrInvalidConfig, n.MaxLabels)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
