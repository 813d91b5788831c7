package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mxinitup/six-minute-walk-calculator/internal/model"
	"github.com/mxinitup/six-minute-walk-calculator/internal/util"
)

// CalcCommand is the command `calc`, which reconstructs the distance table
// non-interactively from given lap times and checkpoint observations.
type CalcCommand struct {
	Laps        []string `short:"l" long:"lap" description:"A cumulative lap time (repeatable, in recorded order), e.g. '1:05', '65', or ':95.5'" value-name:"<time>"`
	Checkpoints []string `short:"c" long:"checkpoint" description:"A checkpoint observation as '<minute>:<position>:<direction>' with direction 'out' or 'back'; minutes not given count as the start line" value-name:"<obs>"`
	TableFile   string   `short:"f" long:"table-file" description:"Read laps and checkpoints from a YAML file instead of flags" value-name:"<file>"`
}

// tableFile is the YAML shape accepted by --table-file.
type tableFile struct {
	Laps        []string `yaml:"laps"`
	Checkpoints []struct {
		Minute    int     `yaml:"minute"`
		Position  float64 `yaml:"position"`
		Direction string  `yaml:"direction"`
	} `yaml:"checkpoints"`
}

// Execute executes the calc command.
func (command *CalcCommand) Execute(args []string) error {
	laps := command.Laps
	checkpointSpecs := command.Checkpoints

	if command.TableFile != "" {
		if len(laps) > 0 || len(checkpointSpecs) > 0 {
			return fmt.Errorf("--table-file cannot be combined with --lap or --checkpoint")
		}
		yamlData, err := os.ReadFile(command.TableFile)
		if err != nil {
			return fmt.Errorf("cannot read table file (%w)", err)
		}
		parsed := tableFile{}
		if err := yaml.Unmarshal(yamlData, &parsed); err != nil {
			return fmt.Errorf("cannot parse table file (%w)", err)
		}
		laps = parsed.Laps
		for _, c := range parsed.Checkpoints {
			checkpointSpecs = append(checkpointSpecs, fmt.Sprintf("%d:%v:%s", c.Minute, c.Position, c.Direction))
		}
	}

	ledger := model.NewLapLedger()
	for i, lapStr := range laps {
		t, err := model.ParseDuration(lapStr)
		if err != nil {
			return fmt.Errorf("lap %d: %w", i+1, err)
		}
		if err := ledger.Record(t); err != nil {
			return fmt.Errorf("lap %d: %w", i+1, err)
		}
	}

	var checkpoints [model.CheckpointCount]model.Checkpoint
	for i := range checkpoints {
		checkpoints[i] = model.Checkpoint{Minute: i + 1, Position: 0, Direction: model.DirectionOut}
	}
	for _, checkpointStr := range checkpointSpecs {
		checkpoint, err := parseCheckpointSpec(checkpointStr)
		if err != nil {
			return err
		}
		checkpoints[checkpoint.Minute-1] = checkpoint
	}

	result, err := model.ReconstructDistance(ledger.Times(), checkpoints)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s %s %s\n",
		util.PadLeft("min", 3),
		util.PadLeft("laps", 5),
		util.PadLeft("total", 8),
		util.PadLeft("+min", 8),
	)
	for _, row := range result.Rows {
		fmt.Printf("%s %s %s %s\n",
			util.PadLeft(fmt.Sprintf("%d", row.Minute), 3),
			util.PadLeft(fmt.Sprintf("%d", row.LapsCompleted), 5),
			util.PadLeft(fmt.Sprintf("%.1fm", row.Total), 8),
			util.PadLeft(fmt.Sprintf("%.1fm", row.ThisMinute), 8),
		)
	}
	fmt.Printf("\ntotal: %.1fm (%.1f laps)\n", result.TotalDistance, result.TotalLaps)

	return nil
}

// parseCheckpointSpec parses a '<minute>:<position>:<direction>' observation.
func parseCheckpointSpec(spec string) (model.Checkpoint, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return model.Checkpoint{}, fmt.Errorf("checkpoint '%s' is not of the form '<minute>:<position>:<direction>'", spec)
	}

	minute, err := strconv.Atoi(parts[0])
	if err != nil {
		return model.Checkpoint{}, fmt.Errorf("checkpoint '%s': cannot parse minute (%w)", spec, err)
	}
	position, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return model.Checkpoint{}, fmt.Errorf("checkpoint '%s': cannot parse position (%w)", spec, err)
	}
	direction, err := model.ParseDirection(parts[2])
	if err != nil {
		return model.Checkpoint{}, fmt.Errorf("checkpoint '%s': %w", spec, err)
	}

	checkpoint := model.Checkpoint{Minute: minute, Position: position, Direction: direction}
	if err := checkpoint.Validate(); err != nil {
		return model.Checkpoint{}, fmt.Errorf("checkpoint '%s': %w", spec, err)
	}
	return checkpoint, nil
}
