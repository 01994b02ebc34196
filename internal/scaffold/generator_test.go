package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		values map[string]string
		want   string
	}{
		{
			name:   "every occurrence",
			tmpl:   "{{A}}-{{A}}-{{B}}",
			values: map[string]string{"{{A}}": "x", "{{B}}": "y"},
			want:   "x-x-y",
		},
		{
			name:   "unknown tokens left alone",
			tmpl:   "{{A}} {{C}}",
			values: map[string]string{"{{A}}": "x"},
			want:   "x {{C}}",
		},
		{
			name:   "no recursion into values",
			tmpl:   "{{A}}",
			values: map[string]string{"{{A}}": "{{B}}", "{{B}}": "y"},
			want:   "{{B}}",
		},
		{
			name:   "prefix tokens",
			tmpl:   "{{PKG}} {{PKG_MODEL}}",
			values: map[string]string{"{{PKG": "bad", "{{PKG}}": "p", "{{PKG_MODEL}}": "m"},
			want:   "p m",
		},
		{
			name:   "no values",
			tmpl:   "{{A}}",
			values: nil,
			want:   "{{A}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.tmpl, tt.values))
		})
	}
}

func TestGenerateRepository(t *testing.T) {
	gen := NewGenerator("/src/main/java")

	file, err := gen.GenerateRepository(RepositorySpec{
		RootNamespace:  "org.egov.pgr",
		ModelNamespace: "org.egov.pgr.web.models",
		Entity:         "ServiceRequest",
		IDType:         "String",
		Methods:        "    Optional<ServiceRequest> findByServiceRequestId(String serviceRequestId);",
	})
	require.NoError(t, err)

	assert.Equal(t, KindRepository, file.Kind)
	assert.Equal(t, filepath.Join("/src/main/java", "org", "egov", "pgr", "repository", "ServiceRequestRepository.java"), file.Path)

	want := `package org.egov.pgr.repository;

import org.egov.pgr.web.models.ServiceRequest;
import org.springframework.data.jpa.repository.JpaRepository;
import org.springframework.stereotype.Repository;
import java.util.*;

@Repository
public interface ServiceRequestRepository extends JpaRepository<ServiceRequest, String> {

    Optional<ServiceRequest> findByServiceRequestId(String serviceRequestId);
}
`
	assert.Equal(t, want, file.Content)
}

func TestGenerateConfig(t *testing.T) {
	gen := NewGenerator("root")

	security, err := gen.GenerateConfig(KindSecurityConfig, "org.egov.pgr")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("root", "org", "egov", "pgr", "config", "SecurityConfig.java"), security.Path)
	assert.True(t, strings.HasPrefix(security.Content, "package org.egov.pgr.config;\n"))
	assert.Contains(t, security.Content, "public class SecurityConfig {")
	assert.NotContains(t, security.Content, "{{PACKAGE}}")

	client, err := gen.GenerateConfig(KindClientConfig, "org.egov.pgr")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("root", "org", "egov", "pgr", "config", "DigitClientConfig.java"), client.Path)
	assert.Contains(t, client.Content, "@Import(ApiConfig.class)")
	assert.Contains(t, client.Content, "public class DigitClientConfig {")

	_, err = gen.GenerateConfig(KindRepository, "org.egov.pgr")
	assert.Error(t, err)
}

func TestErrors_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"path", NewPathError("schema document", "pgr.yaml", errors.New("no such file")), ErrInputPathNotFound},
		{"namespace", NewNamespaceError("base", "src"), ErrNamespaceNotDetected},
		{"file", NewFileError("write", "A.java", errors.New("disk full")), ErrFileProcessing},
		{"entity", NewEntityError("AuditDetails", ErrNoIdentifierField), ErrNoIdentifierField},
		{"wrapped", fmt.Errorf("failed to generate: %w", NewNamespaceError("model", "src")), ErrNamespaceNotDetected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
		})
	}
}

func TestErrors_Messages(t *testing.T) {
	assert.Equal(t, "svcscaffold: schema document not found: pgr.yaml: no such file",
		NewPathError("schema document", "pgr.yaml", errors.New("no such file")).Error())
	assert.Equal(t, "svcscaffold: could not detect model namespace under src",
		NewNamespaceError("model", "src").Error())
	assert.Equal(t, "svcscaffold: backup A.java: denied",
		NewFileError("backup", "A.java", errors.New("denied")).Error())

	var fe *FileError
	require.ErrorAs(t, fmt.Errorf("batch: %w", NewFileError("read", "B.java", nil)), &fe)
	assert.Equal(t, "B.java", fe.Path)
}
