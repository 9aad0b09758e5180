package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/schedulers"

	"github.com/spf13/cobra"
)

const (
	manualInput   = 1
	inputFromFile = 2
	exitProgram   = 3
)

func newInteractiveCmd() *cobra.Command {
	var opts outputOptions

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Choose an algorithm and enter processes at prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("export-dir") {
				opts.exportDir = cfg.ExportDir
			}
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			algorithm, err := p.algorithmSelection()
			if err != nil {
				return err
			}

			var processes []core.Process
			switch selection, err := p.processSelection(); {
			case err != nil:
				return err
			case selection == manualInput:
				processes, err = p.manualInput()
				if err != nil {
					return err
				}
			case selection == inputFromFile:
				path, err := p.readLine("Enter the path to your file: ")
				if err != nil {
					return err
				}
				processes, err = loader.LoadFile(path)
				if err != nil {
					return fmt.Errorf("load processes: %w", err)
				}
			case selection == exitProgram:
				return nil
			default:
				return fmt.Errorf("wrong input chosen: %d", selection)
			}

			quantum := cfg.RoundRobinTimeQuantum
			if algorithm == schedulers.AlgorithmRR {
				quantum, err = p.readInt("Enter the time quantum: ")
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(p.out)
			return execute(cmd, algorithm, processes, quantum, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.export, "export", false, "Write the report to a timestamped file")
	cmd.Flags().StringVar(&opts.exportDir, "export-dir", ".", "Directory for exported reports (default from config)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Record the run in the history database")

	return cmd
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

var errNoInput = errors.New("unexpected end of input")

func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// readInt asks again until it gets an integer.
func (p *prompter) readInt(prompt string) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "%q is not a number.\n", line)
	}
}

func (p *prompter) algorithmSelection() (schedulers.Algorithm, error) {
	fmt.Fprint(p.out, "Welcome to the scheduling algorithm program.\n"+
		"Which algorithm do you want to run?\n")
	for i, algorithm := range schedulers.Algorithms {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, algorithm.DisplayName())
	}
	fmt.Fprintln(p.out)

	selection, err := p.readInt("Enter a selection: ")
	if err != nil {
		return "", err
	}
	return schedulers.ParseAlgorithm(strconv.Itoa(selection))
}

func (p *prompter) processSelection() (int, error) {
	fmt.Fprint(p.out, "How do you want to enter your processes?\n\n"+
		"1. Enter processes manually\n"+
		"2. Use processes from a text file\n"+
		"3. Exit\n\n")
	return p.readInt("Enter a selection: ")
}

func (p *prompter) manualInput() ([]core.Process, error) {
	var processes []core.Process
	for {
		pid, err := p.readInt("Enter a Process ID (PID): ")
		if err != nil {
			return nil, err
		}
		at, err := p.readInt("Enter an Arrival Time (AT): ")
		if err != nil {
			return nil, err
		}
		bt, err := p.readInt("Enter a Burst Time (BT): ")
		if err != nil {
			return nil, err
		}

		process := core.NewProcess(pid, at, bt)
		if _, err := process.Validate(); err != nil {
			fmt.Fprintf(p.out, "Process rejected: %v\n", err)
		} else {
			processes = append(processes, process)
		}

		more, err := p.readInt("Do you want to add another process?\n1. Yes\n2. No\nEnter a selection: ")
		if err != nil {
			return nil, err
		}
		if more != 1 {
			break
		}
	}
	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: no processes entered", schedulers.ErrInvalidInput)
	}
	return processes, nil
}
