package main

import (
	"fmt"
	"os"

	"github.com/benoitkugler/vbodraw/vbodraw"
	"github.com/benoitkugler/vbodraw/vboscene"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envPrefix is used for environment overrides, such as VBOVIEW_WIDTH.
const envPrefix = "VBOVIEW"

// subCommand binds a command to its configuration.
type subCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vboview",
	Short: "vboview: primitive assembly visualizer",
	Long: `
vboview draws ordered lists of 2D vertices (VBOs) the way a graphics
pipeline assembles them into points, segments and triangles, according
to the draw mode of each VBO.
`,
	SilenceUsage: true,
}

var rootConf = viper.New()

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by values set with environment variables and flags.")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"Log every rendered group, in a human readable format.")
	bindFlags(rootConf, rootCmd.PersistentFlags())

	subcommands := []*subCommand{&renderCmd, &demoCmd}
	for _, sc := range subcommands {
		rootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		bindFlags(sc.Conf, sc.Cmd.Flags(), rootCmd.PersistentFlags())
		sc.Conf.SetEnvPrefix(envPrefix)
		sc.Conf.AutomaticEnv()
	}
	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading config"))
				os.Exit(1)
			}
		}
	})
}

// bindFlags makes the flag values available through conf.
// Flags are registered in init, so a failure is a programming error.
func bindFlags(conf *viper.Viper, sets ...*flag.FlagSet) {
	for _, set := range sets {
		if err := conf.BindPFlags(set); err != nil {
			panic(err)
		}
	}
}

// setupLogger builds the logger of the command
// and installs it in the libraries.
func setupLogger(conf *viper.Viper) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if conf.GetBool("verbose") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, errors.Wrap(err, "creating logger")
	}
	vbodraw.SetLogger(logger)
	vboscene.SetLogger(logger)
	return logger, nil
}
