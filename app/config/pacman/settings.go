// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config holds the settings of the pacman service.
//
// Settings are read from zero or more YAML files and then from the
// environment, which takes precedence. Missing values fall back to defaults
// applied in Validate.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cloudzero/pacman/app/utils/scout"
	"github.com/cloudzero/pacman/app/utils/scout/kubernetes"
	"github.com/cloudzero/pacman/app/utils/scout/metadata"
)

const (
	DefaultServerPort   = 8080
	DefaultServerMode   = "http"
	DefaultDatabasePath = "pacman.sqlite"
	DefaultLogLevel     = "info"
	DefaultTopScores    = 10
)

type Settings struct {
	Server   Server   `yaml:"server"`
	Logging  Logging  `yaml:"logging"`
	Database Database `yaml:"database"`
	Location Location `yaml:"location"`
}

type Server struct {
	Mode      string `yaml:"mode" default:"http" env:"SERVER_MODE" env-description:"server mode; only http is supported"`
	Port      uint   `yaml:"port" default:"8080" env:"SERVER_PORT" env-description:"server port"`
	Profiling bool   `yaml:"profiling" default:"false" env:"SERVER_PROFILING" env-description:"enable profiling"`
}

type Logging struct {
	Level      string   `yaml:"level" default:"info" env:"LOG_LEVEL" env-description:"logging level such as debug, info, error"`
	OmitFields []string `yaml:"omit_fields" env:"LOG_OMIT_FIELDS" env-separator:"," env-description:"log fields to drop from every line"`
}

type Database struct {
	Path      string `yaml:"path" default:"pacman.sqlite" env:"DATABASE_PATH" env-description:"sqlite database file, or :memory:"`
	TopScores int    `yaml:"top_scores" default:"10" env:"DATABASE_TOP_SCORES" env-description:"number of high scores returned by the list endpoint"`
}

// Location controls cloud discovery. Setting Cloud disables discovery and
// reports Cloud and Zone as configured.
type Location struct {
	Cloud       string        `yaml:"cloud" env:"LOCATION_CLOUD" env-description:"static cloud name; disables discovery"`
	Zone        string        `yaml:"zone" env:"LOCATION_ZONE" env-description:"static zone, used with cloud"`
	Timeout     time.Duration `yaml:"timeout" default:"10s" env:"LOCATION_PROBE_TIMEOUT" env-description:"time budget of each metadata probe"`
	NodeNameEnv string        `yaml:"node_name_env" default:"MY_NODE_NAME" env:"LOCATION_NODE_NAME_ENV" env-description:"environment variable holding the kubernetes node name"`
	APIServer   string        `yaml:"api_server" default:"https://kubernetes.default.svc" env:"LOCATION_API_SERVER" env-description:"kubernetes API server URL"`
	TokenPath   string        `yaml:"token_path" default:"/var/run/secrets/kubernetes.io/serviceaccount/token" env:"LOCATION_TOKEN_PATH" env-description:"service account token file"`
	CACertPath  string        `yaml:"ca_cert_path" default:"/var/run/secrets/kubernetes.io/serviceaccount/ca.crt" env:"LOCATION_CA_CERT_PATH" env-description:"cluster CA certificate file"`
}

// NewSettings loads the given YAML files in order, then the environment.
func NewSettings(configFiles ...string) (*Settings, error) {
	var cfg Settings

	read := false
	for _, cfgFile := range configFiles {
		if cfgFile == "" {
			continue
		}

		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("no config %s", cfgFile)
		}

		if err := cleanenv.ReadConfig(cfgFile, &cfg); err != nil {
			return nil, fmt.Errorf("config read %s: %w", cfgFile, err)
		}
		read = true
	}

	if !read {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.Wrap(err, "config read environment")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "failed to validate settings")
	}

	return &cfg, nil
}

func (s *Settings) Validate() error {
	if err := s.Server.Validate(); err != nil {
		return errors.Wrap(err, "server validation")
	}
	if err := s.Logging.Validate(); err != nil {
		return errors.Wrap(err, "logging validation")
	}
	if err := s.Database.Validate(); err != nil {
		return errors.Wrap(err, "database validation")
	}
	if err := s.Location.Validate(); err != nil {
		return errors.Wrap(err, "location validation")
	}
	return nil
}

func (s *Server) Validate() error {
	if s.Mode == "" {
		s.Mode = DefaultServerMode
	}
	// TLS is terminated in front of the service
	if s.Mode != "http" {
		return fmt.Errorf("unsupported server mode %q", s.Mode)
	}
	if s.Port == 0 {
		s.Port = DefaultServerPort
	}
	if s.Port > 65535 {
		return fmt.Errorf("invalid server port %d", s.Port)
	}
	return nil
}

func (l *Logging) Validate() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	if l.Level == "" {
		l.Level = DefaultLogLevel
	}
	fields := l.OmitFields[:0]
	for _, f := range l.OmitFields {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	l.OmitFields = fields
	return nil
}

func (d *Database) Validate() error {
	d.Path = strings.TrimSpace(d.Path)
	if d.Path == "" {
		d.Path = DefaultDatabasePath
	}
	if d.TopScores <= 0 {
		d.TopScores = DefaultTopScores
	}
	return nil
}

func (l *Location) Validate() error {
	l.Cloud = strings.TrimSpace(l.Cloud)
	l.Zone = strings.TrimSpace(l.Zone)
	if l.Cloud == "" && l.Zone != "" {
		return errors.New("zone is set without a cloud")
	}
	if l.Timeout <= 0 {
		l.Timeout = metadata.DefaultTimeout
	}
	if l.NodeNameEnv == "" {
		l.NodeNameEnv = kubernetes.DefaultNodeNameEnv
	}
	if l.APIServer == "" {
		l.APIServer = kubernetes.DefaultAPIServer
	}
	if l.TokenPath == "" {
		l.TokenPath = kubernetes.DefaultTokenPath
	}
	if l.CACertPath == "" {
		l.CACertPath = kubernetes.DefaultCACertPath
	}
	return nil
}

// ScoutOptions translates the location settings into discovery options.
func (l *Location) ScoutOptions() []scout.Option {
	return []scout.Option{
		scout.WithProbeTimeout(l.Timeout),
		scout.WithKubernetesOptions(
			kubernetes.WithNodeNameEnv(l.NodeNameEnv),
			kubernetes.WithAPIServer(l.APIServer),
			kubernetes.WithTokenPath(l.TokenPath),
			kubernetes.WithCACertPath(l.CACertPath),
		),
	}
}

// ToYAML renders the settings, e.g. for debug output.
func (s *Settings) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode settings")
	}
	return out, nil
}
