package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"areagen/internal/devices"
	"areagen/internal/generators"
	"areagen/internal/haconfig"
	"areagen/internal/survey"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "generate",
		short: "Generate a Home Assistant area configuration",
		usage: "areagen generate [-o dir] <area>",
		long: `Run the interactive survey for an area and write its configuration.

Asks which sensors and devices exist, confirms every entity id, then
writes <output>/<area>.yaml with template sensors and input helpers.

The output directory defaults to generated_configs/ and can be set with
-o or via output_dir in .areagen/settings.yaml.
`,
		run: runGenerate,
	},
	{
		name:  "areas",
		short: "List generated area configurations",
		usage: "areagen areas [-o dir]",
		long: `List every generated area file in the output directory with its
template and input helper counts.
`,
		run: runAreas,
	},
	{
		name:  "remove",
		short: "Remove a generated area configuration",
		usage: "areagen remove [-o dir] <area>",
		long: `Delete the generated file for an area.

Errors if the area was never generated.
`,
		run: runRemove,
	},
	{
		name:  "devices",
		short: "List supported device kinds",
		usage: "areagen devices",
		long: `List the device kinds the survey can ask about, with descriptions.
`,
		run: runDevices,
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "areagen - Home Assistant area configuration generator\n\n")
	fmt.Fprintf(w, "Usage:\n  areagen <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'areagen help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "areagen: unknown command %q\n\nRun 'areagen help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'areagen help' for usage.", args[0])
}

// openWorkspace resolves the output directory from flag and settings.
func openWorkspace(outFlag string) (*haconfig.Workspace, error) {
	settings, err := haconfig.LoadSettings(".")
	if err != nil {
		return nil, err
	}
	return haconfig.OpenWorkspace(settings.ResolveOutputDir(outFlag))
}

// ---------------------------------------------------------------------------
// generate
// ---------------------------------------------------------------------------

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Faint(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	output := fs.String("o", "", "output directory")
	fs.StringVar(output, "output", "", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: areagen generate [-o dir] <area>")
	}
	areaName := fs.Arg(0)

	ws, err := openWorkspace(*output)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Generating configuration for " + areaName))

	features, err := collectFeatures(areaName)
	if err != nil {
		return err
	}

	features.EntityIDs, err = confirmEntities(features)
	if err != nil {
		return err
	}

	cfg := buildAreaConfig(features)
	path, err := ws.WriteArea(features.NormalizedName, cfg)
	if err != nil {
		return err
	}

	printSummary(features, cfg, path)
	return nil
}

// collectFeatures runs the feature survey phases and assembles the record.
func collectFeatures(areaName string) (haconfig.Features, error) {
	f := haconfig.Features{
		AreaName:       areaName,
		NormalizedName: haconfig.NormalizeAreaName(areaName),
	}

	base, err := survey.Ask([]survey.Question{
		survey.ConfirmQ("motion", "Does this area have motion sensors?", true),
		survey.ConfirmQ("door", "Does this area have door sensors?", true),
		survey.ConfirmQ("window", "Does this area have window sensors?", false),
		survey.ConfirmQ("temperature", "Does this area have temperature sensors?", true),
		survey.ConfirmQ("humidity", "Does this area have humidity sensors?", false),
		survey.ConfirmQ("lighting", "Does this area have smart lighting?", true),
	})
	if err != nil {
		return f, err
	}
	f.MotionSensor = base.Bool("motion")
	f.DoorSensor = base.Bool("door")
	f.WindowSensor = base.Bool("window")
	f.TemperatureSensor = base.Bool("temperature")
	f.HumiditySensor = base.Bool("humidity")
	f.SmartLighting = base.Bool("lighting")

	if f.SmartLighting {
		fmt.Println(sectionStyle.Render("\nConfigure default lighting settings:"))
		lighting, err := survey.Ask([]survey.Question{
			intRangeQ("brightness", "Default brightness (0-100%)", 50, 0, 100),
			survey.ChoiceQ("color_temp", "Default color temperature",
				[]string{"warm", "cool", "neutral"}, "neutral"),
			intRangeQ("transition", "Default transition time (seconds)", 1, 0, 60),
		})
		if err != nil {
			return f, err
		}
		f.Lighting = &haconfig.LightingDefaults{
			Brightness: lighting.Int("brightness", 50),
			ColorTemp:  lighting.String("color_temp"),
			Transition: lighting.Int("transition", 1),
		}
	}

	powered, err := survey.Ask([]survey.Question{
		survey.ConfirmQ("powered", "Does this area have powered devices?", true),
	})
	if err != nil {
		return f, err
	}
	f.PowerMonitoring = powered.Bool("powered")

	if f.PowerMonitoring {
		fmt.Println(sectionStyle.Render("\nSelect devices present in this area:"))
		var questions []survey.Question
		for _, d := range devices.All() {
			questions = append(questions,
				survey.ConfirmQ(d.Name(), "Is there a "+d.Description()+"?", false))
		}
		selected, err := survey.Ask(questions)
		if err != nil {
			return f, err
		}
		for _, d := range devices.All() {
			if selected.Bool(d.Name()) {
				f.Devices = append(f.Devices, d.Name())
			}
		}
	}

	climate, err := survey.Ask([]survey.Question{
		survey.ConfirmQ("climate", "Does this area have climate control?", true),
	})
	if err != nil {
		return f, err
	}
	f.ClimateControl = climate.Bool("climate")

	return f, nil
}

// intRangeQ builds an int question bounded to [lo, hi].
func intRangeQ(key, prompt string, def, lo, hi int) survey.Question {
	q := survey.IntQ(key, prompt, def)
	q.Validate = func(answer string) error {
		n, err := strconv.Atoi(answer)
		if err != nil {
			return fmt.Errorf("please enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("value must be between %d and %d", lo, hi)
		}
		return nil
	}
	return q
}

// entitySuggestions lists every entity id the selected features imply, in
// confirmation order.
func entitySuggestions(f haconfig.Features) []haconfig.EntitySuggestion {
	norm := f.NormalizedName
	var s []haconfig.EntitySuggestion

	if f.ClimateControl {
		s = append(s, haconfig.EntitySuggestion{
			Domain: "climate", SuggestedID: norm, Description: "climate control", Role: "climate"})
	}
	if f.MotionSensor {
		s = append(s, haconfig.EntitySuggestion{
			Domain: "binary_sensor", SuggestedID: norm + "_motion", Description: "motion sensor", Role: "motion"})
	}
	if f.DoorSensor {
		s = append(s, haconfig.EntitySuggestion{
			Domain: "binary_sensor", SuggestedID: norm + "_door_contact", Description: "door contact sensor", Role: "contact"})
	}
	if f.WindowSensor {
		s = append(s, haconfig.EntitySuggestion{
			Domain: "binary_sensor", SuggestedID: norm + "_window", Description: "window sensor", Role: "window"})
	}
	if f.TemperatureSensor {
		s = append(s, haconfig.EntitySuggestion{
			Domain: "sensor", SuggestedID: norm + "_temperature", Description: "temperature sensor", Role: "temperature"})
	}
	if f.HumiditySensor {
		s = append(s, haconfig.EntitySuggestion{
			Domain: "sensor", SuggestedID: norm + "_humidity", Description: "humidity sensor", Role: "humidity"})
	}
	if f.SmartLighting {
		s = append(s,
			haconfig.EntitySuggestion{
				Domain: "light", SuggestedID: norm + "_lights", Description: "area light group", Role: "lights"},
			haconfig.EntitySuggestion{
				Domain: "scene", SuggestedID: norm + "_light_scene", Description: "default light scene", Role: "scene"})
	}

	s = append(s, devices.EntitiesFor(f)...)

	s = append(s, haconfig.EntitySuggestion{
		Domain: "input_boolean", SuggestedID: norm + "_occupied_override",
		Description: "occupancy override switch", Role: "override"})

	return s
}

// confirmEntities prompts for every implied entity id and returns the
// confirmed role → entity id map.
func confirmEntities(f haconfig.Features) (haconfig.EntityIDs, error) {
	suggestions := entitySuggestions(f)
	if len(suggestions) == 0 {
		return haconfig.EntityIDs{}, nil
	}

	fmt.Println(sectionStyle.Render("\nPlease confirm the entity IDs for your configuration:"))

	taken := make(map[string]bool)
	var questions []survey.Question
	for _, sug := range suggestions {
		domain := sug.Domain
		questions = append(questions, survey.Question{
			Key:       haconfig.UniqueRole(sug.RoleKey(), taken),
			Prompt:    "Entity ID for the " + sug.Description,
			Kind:      survey.Text,
			Default:   sug.Default(),
			Normalize: haconfig.NormalizeEntityID,
			Validate: func(answer string) error {
				return haconfig.ValidateEntityID(domain, answer)
			},
		})
	}

	answers, err := survey.Ask(questions)
	if err != nil {
		return nil, err
	}

	ids := make(haconfig.EntityIDs, len(questions))
	for _, q := range questions {
		ids[q.Key] = answers.String(q.Key)
	}
	return ids, nil
}

// buildAreaConfig assembles the complete document for the surveyed area.
func buildAreaConfig(f haconfig.Features) haconfig.AreaConfig {
	var templates []haconfig.TemplateItem

	if f.MotionSensor || f.DoorSensor {
		templates = append(templates, generators.OccupancyConfig(f)...)
	}
	if f.PowerMonitoring {
		templates = append(templates, devices.ComponentsFor(f)...)
		templates = append(templates, generators.PowerConfig(f)...)
	}
	if f.ClimateControl {
		templates = append(templates, generators.ClimateConfig(f)...)
	}

	controls := haconfig.BuildInputControls(f, devices.InputsFor(f))

	return haconfig.AreaConfig{
		Name: f.AreaName,
		Body: haconfig.AreaBody{
			Template:     templates,
			InputNumber:  controls.Numbers,
			InputBoolean: controls.Booleans,
		},
	}
}

// printSummary reports what was generated and where.
func printSummary(f haconfig.Features, cfg haconfig.AreaConfig, path string) {
	fmt.Println()
	fmt.Println(doneStyle.Render("Configuration generated for " + f.AreaName))
	fmt.Printf("  file:           %s\n", path)
	fmt.Printf("  template items: %d\n", len(cfg.Body.Template))
	fmt.Printf("  input_number:   %d\n", cfg.Body.InputNumber.Len())
	fmt.Printf("  input_boolean:  %d\n", cfg.Body.InputBoolean.Len())
	if len(f.Devices) > 0 {
		fmt.Printf("  devices:        %v\n", f.Devices)
	}
}

// ---------------------------------------------------------------------------
// areas
// ---------------------------------------------------------------------------

func runAreas(args []string) error {
	fs := flag.NewFlagSet("areas", flag.ContinueOnError)
	output := fs.String("o", "", "output directory")
	fs.StringVar(output, "output", "", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ws, err := openWorkspace(*output)
	if err != nil {
		return err
	}
	infos, err := ws.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Printf("no generated areas in %s\n", ws.Dir)
		return nil
	}
	for _, info := range infos {
		name := info.Name
		if name == "" {
			name = info.File
		}
		fmt.Printf("%-24s %2d template items, %2d input_number, %2d input_boolean\n",
			name, info.TemplateItems, info.InputNumbers, info.InputBooleans)
	}
	return nil
}

// ---------------------------------------------------------------------------
// remove
// ---------------------------------------------------------------------------

func runRemove(args []string) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	output := fs.String("o", "", "output directory")
	fs.StringVar(output, "output", "", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: areagen remove [-o dir] <area>")
	}

	ws, err := openWorkspace(*output)
	if err != nil {
		return err
	}
	normalized := haconfig.NormalizeAreaName(fs.Arg(0))
	if err := ws.Remove(normalized); err != nil {
		return err
	}
	fmt.Printf("removed area %q from %s\n", normalized, ws.Dir)
	return nil
}

// ---------------------------------------------------------------------------
// devices
// ---------------------------------------------------------------------------

func runDevices(args []string) error {
	for _, d := range devices.All() {
		fmt.Printf("  %-10s %s\n", d.Name(), d.Description())
	}
	return nil
}

func main() {
	if err := dispatch(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
