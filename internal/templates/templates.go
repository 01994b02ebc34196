package templates

import (
	"embed"
)

//go:embed java/*.tmpl
var javaTemplates embed.FS

// Placeholder tokens understood by the Java templates.
const (
	TokenPackage      = "{{PACKAGE}}"
	TokenModelPackage = "{{MODEL_PACKAGE}}"
	TokenClassName    = "{{CLASSNAME}}"
	TokenIDType       = "{{ID_TYPE}}"
	TokenMethods      = "{{METHODS}}"
)

// GetRepositoryTemplate returns the data-access interface template content
func GetRepositoryTemplate() (string, error) {
	return read("java/repository.java.tmpl")
}

// GetSecurityConfigTemplate returns the JWT security configuration template content
func GetSecurityConfigTemplate() (string, error) {
	return read("java/security_config.java.tmpl")
}

// GetClientConfigTemplate returns the platform client configuration template content
func GetClientConfigTemplate() (string, error) {
	return read("java/client_config.java.tmpl")
}

func read(name string) (string, error) {
	content, err := javaTemplates.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
