package main

import (
	"fmt"
	"log"
	"os"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/environment/snake"
	"github.com/OverKoder/Jormungandr/experiment"
	"github.com/OverKoder/Jormungandr/experiment/tracker"
	"github.com/OverKoder/Jormungandr/experiment/trackers"
	"github.com/OverKoder/Jormungandr/planner"
	"github.com/OverKoder/Jormungandr/timestep"
	"github.com/OverKoder/Jormungandr/utils/progressbar"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/floats"
)

var (
	configFile string

	episodes      int
	algorithm     string
	learningRate  float64
	epsilon       float64
	epsilonEnd    float64
	epsilonDecay  float64
	nSteps        int
	plannerType   string
	planningSteps int
	threshold     float64
	loadPath      string
	savePath      string
	seed          uint64
	width         int
	height        int
	maxSteps      int
	shapedReward  float64

	plotFile    string
	returnsFile string
	render      bool
)

func addFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&configFile, "config", "", "YAML experiment configuration")

	f.IntVarP(&episodes, "episodes", "e", 0, "number of episodes")
	f.StringVarP(&algorithm, "algorithm", "a", "", "one of sarsa, "+
		"qlearning, nStepSarsa, nStepOffPolicy")
	f.Float64Var(&learningRate, "alpha", 0, "learning rate")
	f.Float64Var(&epsilon, "epsilon", 0, "exploration rate")
	f.Float64Var(&epsilonEnd, "epsilon-end", 0, "final exploration rate")
	f.Float64Var(&epsilonDecay, "epsilon-decay", 0, "exploration decay "+
		"time constant in action selections, 0 keeps epsilon fixed")
	f.IntVar(&nSteps, "n", 0, "number of steps of n-step methods")
	f.StringVar(&plannerType, "planner", "", "one of none, dynaq, "+
		"prioritized")
	f.IntVar(&planningSteps, "planning-steps", 0, "transitions replayed "+
		"after each episode")
	f.Float64Var(&threshold, "threshold", 0, "prioritized sweeping TD "+
		"error threshold")
	f.StringVarP(&loadPath, "checkpoint", "c", "", "action values to start "+
		"from")
	f.StringVarP(&savePath, "save", "s", "", "file to checkpoint action "+
		"values to")
	f.Uint64Var(&seed, "seed", 0, "random seed")
	f.IntVar(&width, "width", 0, "board width")
	f.IntVar(&height, "height", 0, "board height")
	f.IntVar(&maxSteps, "max-steps", 0, "episode step ceiling")
	f.Float64Var(&shapedReward, "shaped-reward", 0, "scale of the "+
		"distance-shaped step penalty, 0 disables shaping")

	f.StringVar(&plotFile, "plot", "", "image to draw the learning curve to")
	f.StringVar(&returnsFile, "returns", "", "file to save episode returns to")
	f.BoolVar(&render, "render", false, "draw every step as text")
}

// TrainCommand returns the command that trains an agent
func TrainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train an agent, checkpointing its action values",
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, false)
		},
	}
}

// TestCommand returns the command that runs an agent without learning
func TestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run an agent without changing its action values",
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, true)
		},
	}
}

// config reads the configuration file, if any, and applies the flags
// that were set on the command line over it
func config(flags *pflag.FlagSet, test bool) (experiment.Config, error) {
	c := experiment.DefaultConfig()
	if configFile != "" {
		var err error
		if c, err = experiment.FromYaml(configFile); err != nil {
			return c, err
		}
	}
	c.Test = c.Test || test

	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("episodes", func() { c.Episodes = episodes })
	set("algorithm", func() { c.Algorithm = agent.Algorithm(algorithm) })
	set("alpha", func() { c.Agent.LearningRate = learningRate })
	set("epsilon", func() { c.Policy.Epsilon = epsilon })
	set("epsilon-end", func() { c.Policy.EpsilonEnd = epsilonEnd })
	set("epsilon-decay", func() { c.Policy.EpsilonDecay = epsilonDecay })
	set("n", func() { c.NSteps = nSteps })
	set("planner", func() { c.Planner.Type = planner.Type(plannerType) })
	set("planning-steps", func() { c.Planner.PlanningSteps = planningSteps })
	set("threshold", func() { c.Planner.Threshold = threshold })
	set("checkpoint", func() { c.LoadPath = loadPath })
	set("save", func() { c.SavePath = savePath })
	set("seed", func() { c.Seed = seed })
	set("width", func() { c.Env.Width = width })
	set("height", func() { c.Env.Height = height })
	set("max-steps", func() { c.Env.MaxSteps = maxSteps })
	set("shaped-reward", func() { c.Env.ShapedReward = shapedReward })

	return c, c.Validate()
}

func run(cmd *cobra.Command, test bool) {
	c, err := config(cmd.Flags(), test)
	if err != nil {
		log.Fatalf("could not configure experiment: %v", err)
	}

	setup, err := c.Create()
	if err != nil {
		log.Fatalf("could not create experiment: %v", err)
	}
	if render {
		setup.Env.SetRenderer(snake.NewTextRenderer(os.Stdout, c.Env.Width,
			c.Env.Height))
	}

	returns := trackers.NewReturnPlot(plotFile, string(c.Algorithm))
	lengths := trackers.NewEpisodeLength("")
	setup.Register(tracker.Register(returns, setup.Env))
	setup.Register(lengths)
	if returnsFile != "" {
		setup.Register(trackers.NewReturn(returnsFile))
	}

	bar := progressbar.NewManualProgressBar(os.Stdout, 40, c.Episodes)
	for i := 0; i < c.Episodes; i++ {
		setup.RunEpisode()
		bar.Increment()
		bar.SetStatus("goals: %d  deaths: %d  ε: %.3f",
			setup.Env.GoalsReached(), setup.Env.Deaths(),
			setup.Policy.Epsilon())
		if !render {
			bar.Display()
		}
	}
	bar.Close()

	setup.Save()
	summarize(setup, c.Test, returns.Data(), lengths)
}

// summarize prints the outcome of every episode of the run
func summarize(setup *experiment.Setup, test bool, returns []float64,
	lengths *trackers.EpisodeLength) {
	mode := "Training"
	if test {
		mode = "Test"
	}
	fmt.Printf("%v finished after %d episodes\n", aurora.Bold(mode),
		len(returns))

	fmt.Println(aurora.Green(fmt.Sprintf("  goals reached: %d",
		setup.Env.GoalsReached())))
	fmt.Println(aurora.Red(fmt.Sprintf("  deaths:        %d",
		setup.Env.Deaths())))
	fmt.Println(aurora.Yellow(fmt.Sprintf("  step limits:   %d",
		lengths.Ends(timestep.StepLimit))))

	if len(returns) > 0 {
		fmt.Println(aurora.Cyan(fmt.Sprintf("  mean return:   %.2f",
			floats.Sum(returns)/float64(len(returns)))))
	}
	fmt.Printf("  final body length: %d\n", len(setup.Env.Body()))
}
