package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"weekwise/internal/models"
	"weekwise/internal/validation"
)

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	cfg, err := ctx.Store.GetConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

type ConfigExportCmd struct {
	Path string `arg:"" help:"File to write the configuration to." type:"path"`
}

func (c *ConfigExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	cfg, err := ctx.Store.GetConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Path, out, 0644); err != nil {
		return err
	}
	fmt.Printf("Exported configuration to: %s\n", c.Path)
	return nil
}

type ConfigImportCmd struct {
	Path string `arg:"" help:"YAML file to import the configuration from." type:"path"`
}

func (c *ConfigImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	var cfg models.PlanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if res := validation.New().ValidateConfig(cfg); res.HasConflicts() {
		fmt.Print(res.FormatReport())
		return fmt.Errorf("config file is invalid, nothing imported")
	}

	if err := ctx.Store.SaveConfig(cfg); err != nil {
		return err
	}
	fmt.Println("Configuration imported")
	return nil
}
