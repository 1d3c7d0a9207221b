package experiment

import (
	"fmt"
	"os"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/agent/policy"
	"github.com/OverKoder/Jormungandr/agent/tabular"
	"github.com/OverKoder/Jormungandr/environment"
	"github.com/OverKoder/Jormungandr/environment/snake"
	"github.com/OverKoder/Jormungandr/experiment/checkpointer"
	"github.com/OverKoder/Jormungandr/planner"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Kind is the kind of configuration file read by FromYaml
const Kind = "jormungandr"

// EnvConfig configures the snake environment and its reward scheme
type EnvConfig struct {
	snake.Config `mapstructure:",squash" yaml:",inline"`

	// ShapedReward is the scale of the distance-shaped step penalty. If
	// 0, every ordinary step costs -1.
	ShapedReward float64 `mapstructure:"shaped_reward" yaml:"shaped_reward"`
}

// Config represents a configuration of an experiment
type Config struct {
	Episodes  int             `mapstructure:"episodes" yaml:"episodes"`
	Algorithm agent.Algorithm `mapstructure:"algorithm" yaml:"algorithm"`
	NSteps    int             `mapstructure:"n_steps" yaml:"n_steps"`
	Test      bool            `mapstructure:"test" yaml:"test"`
	Seed      uint64          `mapstructure:"seed" yaml:"seed"`

	// LoadPath is the snapshot the action values start from. If empty,
	// all action values start at zero.
	LoadPath string `mapstructure:"load_path" yaml:"load_path"`

	// SavePath is where the action values are checkpointed after each
	// training episode. If empty, no checkpoints are written.
	SavePath         string             `mapstructure:"save_path" yaml:"save_path"`
	CheckpointNaming checkpointer.Naming `mapstructure:"checkpoint_naming" yaml:"checkpoint_naming"`

	Env     EnvConfig      `mapstructure:"env" yaml:"env"`
	Agent   tabular.Config `mapstructure:"agent" yaml:"agent"`
	Policy  policy.Config  `mapstructure:"policy" yaml:"policy"`
	Planner planner.Config `mapstructure:"planner" yaml:"planner"`
}

// DefaultConfig returns the default configuration of an experiment
func DefaultConfig() Config {
	return Config{
		Episodes:         1000,
		Algorithm:        agent.Sarsa,
		NSteps:           3,
		SavePath:         "output.bin",
		CheckpointNaming: checkpointer.Overwrite,
		Env: EnvConfig{
			Config: snake.Config{
				Width:    500,
				Height:   500,
				MaxSteps: snake.DefaultMaxSteps,
			},
		},
		Agent:  tabular.Config{LearningRate: 0.1},
		Policy: policy.Config{Epsilon: 0.0},
		Planner: planner.Config{
			Type:      planner.DynaQType,
			Threshold: 0.1,
		},
	}
}

// OuterConfig is the layout of a configuration file: the kind of the
// file and the experiment definition itself
type OuterConfig struct {
	Kind string                 `mapstructure:"kind"`
	Def  map[string]interface{} `mapstructure:"def"`
}

// FromYaml reads an experiment Config from a YAML file. Fields missing
// from the file keep their values in DefaultConfig.
func FromYaml(path string) (Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("fromYaml: %v", err)
	}

	outer := &OuterConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return Config{}, fmt.Errorf("fromYaml: %v", err)
	}
	if outer.Kind != "" && outer.Kind != Kind {
		return Config{}, fmt.Errorf("fromYaml: expected kind %q, got %q",
			Kind, outer.Kind)
	}

	spec, err := yaml.Marshal(outer.Def)
	if err != nil {
		return Config{}, fmt.Errorf("fromYaml: %v", err)
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(spec, &c); err != nil {
		return Config{}, fmt.Errorf("fromYaml: %v", err)
	}
	return c, nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Episodes < 0 {
		return fmt.Errorf("validate: episodes cannot be negative, got %d",
			c.Episodes)
	}

	alg, err := agent.ParseAlgorithm(string(c.Algorithm))
	if err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	if alg.NStep() && c.NSteps < 1 {
		return fmt.Errorf("validate: n must be at least 1, got %d",
			c.NSteps)
	}

	if err := c.Env.Validate(); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	if c.Env.ShapedReward < 0 {
		return fmt.Errorf("validate: shaped reward scale cannot be "+
			"negative, got %v", c.Env.ShapedReward)
	}
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	if err := c.Policy.Validate(); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	pc, err := c.plannerConfig(alg)
	if err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	if err := pc.Validate(); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	if _, err := c.CheckpointNaming.Filenamer(c.SavePath); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	return nil
}

// plannerConfig returns the planner configuration. The planner always
// replays with the experiment's algorithm, since the solver only records
// transitions of that algorithm's shape. A planner that names a
// different algorithm is an error.
func (c Config) plannerConfig(alg agent.Algorithm) (planner.Config, error) {
	p := c.Planner
	if p.Algorithm != "" {
		named, err := agent.ParseAlgorithm(string(p.Algorithm))
		if err != nil {
			return p, fmt.Errorf("planner: %v", err)
		}
		if named != alg {
			return p, fmt.Errorf("planner: cannot replay %v transitions "+
				"recorded by %v", named, alg)
		}
	}
	p.Algorithm = alg
	return p, nil
}

// Setup holds an Experiment along with the components it drives
type Setup struct {
	Experiment
	Env     *snake.Snake
	Agent   *tabular.Agent
	Policy  *policy.EGreedy
	Planner planner.Planner
}

// Create creates the environment, policy, agent, planner, and
// checkpointer described by the Config and the Experiment running them
func (c Config) Create() (*Setup, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	alg, _ := agent.ParseAlgorithm(string(c.Algorithm))

	var task environment.Task
	if c.Env.ShapedReward > 0 {
		var err error
		task, err = snake.NewDistancePenalty(c.Env.ShapedReward, c.Env.Width,
			c.Env.Height)
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
	}
	env, _, err := snake.New(c.Env.Config, task, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	p, err := policy.NewEGreedy(c.Policy, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	a, err := tabular.NewForEnv(c.Agent, env, p)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	if c.LoadPath != "" {
		if err := a.Load(c.LoadPath); err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
	} else if c.Test {
		fmt.Fprintln(os.Stderr, "Warning: testing with zero action values")
	}

	pc, err := c.plannerConfig(alg)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	pl, err := pc.Create(a, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	var checks []checkpointer.Checkpointer
	if c.SavePath != "" && !c.Test {
		filename, err := c.CheckpointNaming.Filenamer(c.SavePath)
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
		check, err := checkpointer.NewEpisodic(1, a, filename)
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
		checks = append(checks, check)
	}

	var exp Experiment
	switch {
	case alg.NStep():
		exp, err = NewNStep(env, a, pl, c.NSteps, alg.OffPolicy(), c.Episodes,
			c.Test, checks...)
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}

	case alg == agent.QLearning:
		exp = NewQLearning(env, a, pl, c.Episodes, c.Test, checks...)

	default:
		exp = NewSarsa(env, a, pl, c.Episodes, c.Test, checks...)
	}

	return &Setup{
		Experiment: exp,
		Env:        env,
		Agent:      a,
		Policy:     p,
		Planner:    pl,
	}, nil
}
