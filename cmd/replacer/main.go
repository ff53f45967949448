// Command replacer applies a rule manifest to a template file and writes the
// resolved output. With -interactive it prompts for values of placeholders
// the manifest leaves unbound before applying.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-replacer/pkg/manifest"
	"github.com/goliatone/go-replacer/pkg/rule"
	"github.com/goliatone/go-replacer/pkg/template"
)

func main() {
	templatePath := flag.String("template", "", "template file to resolve")
	rulesPath := flag.String("rules", "", "rule manifest (YAML or JSON)")
	output := flag.String("output", "", "output file (stdout if empty)")
	namespace := flag.String("namespace", "", "macro namespace override")
	interactive := flag.Bool("interactive", false, "prompt for unbound placeholders")
	flag.Parse()

	if *templatePath == "" {
		log.Fatal("missing -template")
	}

	raw, err := os.ReadFile(*templatePath)
	if err != nil {
		log.Fatalf("Failed to read template: %v", err)
	}
	text := string(raw)

	builder, err := newBuilder(*rulesPath, *namespace)
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}

	if *interactive {
		if err := promptForUnbound(builder, text); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	resolved, err := builder.Build().Apply(text)
	if err != nil {
		log.Fatalf("Failed to apply template: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(resolved), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Resolved template written to %s\n", *output)
	} else {
		fmt.Print(resolved)
	}
}

func newBuilder(rulesPath, namespace string) (*template.Builder, error) {
	var opts []template.Option

	var m manifest.Manifest
	if rulesPath != "" {
		var err error
		m, err = manifest.Load(manifest.SourceFromFile(rulesPath), nil)
		if err != nil {
			return nil, err
		}
		if m.Namespace != "" {
			opts = append(opts, template.WithNamespace(m.Namespace))
		}
	}
	if namespace != "" {
		opts = append(opts, template.WithNamespace(namespace))
	}

	return template.NewBuilder(opts...).Rules(m.Rules...), nil
}

// promptForUnbound inspects the template and asks for a value for every
// placeholder the current rule set does not cover. Repeated occurrences of
// the same (kind, key) pair are asked once.
func promptForUnbound(builder *template.Builder, text string) error {
	// Build a throwaway snapshot to reuse its lookup.
	snapshot := builder.Build()

	found, err := snapshot.Inspect(text)
	if err != nil {
		return err
	}

	asked := make(map[string]bool)
	for _, ph := range found {
		slot := string(ph.Kind) + "/" + ph.Key
		if asked[slot] || snapshot.Bound(ph.Kind, ph.Key) {
			continue
		}
		asked[slot] = true

		var value string
		prompt := &survey.Input{
			Message: fmt.Sprintf("Value for %s placeholder %q:", ph.Kind, ph.Key),
			Help:    fmt.Sprintf("template fallback: %s", ph.Fallback),
		}
		if err := survey.AskOne(prompt, &value, survey.WithValidator(survey.Required)); err != nil {
			return err
		}

		r, err := rule.New(ph.Kind, ph.Key, value)
		if err != nil {
			return err
		}
		builder.Rule(r)
	}

	return nil
}
