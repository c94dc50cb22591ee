// Package jobfile reads YAML translation jobs, the batch input format for
// ad-hoc runs that do not originate from a .resx file pair.
package jobfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BobinYang/ResXResourceManager/internal/translation"
)

// Job is one batch of strings to translate.
type Job struct {
	SourceLanguage string    `yaml:"source_language"`
	Items          []JobItem `yaml:"items"`
}

type JobItem struct {
	Key            string `yaml:"key,omitempty"`
	Text           string `yaml:"text"`
	TargetLanguage string `yaml:"target_language"`
}

func Load(path string) (*Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	job, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return job, nil
}

func Parse(raw []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("decode job YAML: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

func (j *Job) Validate() error {
	if j == nil {
		return fmt.Errorf("job is nil")
	}
	if len(j.Items) == 0 {
		return fmt.Errorf("job has no items")
	}
	for i, item := range j.Items {
		if strings.TrimSpace(item.Text) == "" {
			return fmt.Errorf("items[%d]: text is required", i)
		}
		if strings.TrimSpace(item.TargetLanguage) == "" {
			return fmt.Errorf("items[%d]: target_language is required", i)
		}
	}
	return nil
}

// SessionItems converts the job into translation session items, preserving
// document order.
func (j *Job) SessionItems() []*translation.Item {
	if j == nil {
		return nil
	}
	items := make([]*translation.Item, 0, len(j.Items))
	for _, item := range j.Items {
		items = append(items, &translation.Item{
			Key:           strings.TrimSpace(item.Key),
			Source:        item.Text,
			TargetCulture: strings.TrimSpace(item.TargetLanguage),
		})
	}
	return items
}

// Texts lists the job's source strings, for source-language detection.
func (j *Job) Texts() []string {
	if j == nil {
		return nil
	}
	texts := make([]string, 0, len(j.Items))
	for _, item := range j.Items {
		texts = append(texts, item.Text)
	}
	return texts
}
