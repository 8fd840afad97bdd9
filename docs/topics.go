// Package docs embeds the user documentation, one markdown file per topic.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic listed in no other topic.
const index = "readme"

// GetTopic returns the content of a documentation topic. "*" is every topic.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(topic)
	}
	content, err := docs.ReadFile(strings.ToLower(strings.TrimSpace(topic)) + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, run 'sgc topic' for the list: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var expanded []string
	for _, topic := range topics {
		if topic != "*" {
			expanded = append(expanded, topic)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, topic := range expanded {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of the available topics, the index excluded.
func GetAllTopics() ([]string, error) {
	entries, err := fs.ReadDir(docs, ".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		base := strings.TrimSuffix(e.Name(), ".md")
		if e.IsDir() || base == index {
			continue
		}
		topics = append(topics, base)
	}
	sort.Strings(topics)
	return topics, nil
}

var summaryRE = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Summaries returns the one line description of each topic, as listed in the index.
func Summaries() (map[string]string, error) {
	content, err := GetTopic(index)
	if err != nil {
		return nil, err
	}
	res := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		if m := summaryRE.FindStringSubmatch(scanner.Text()); m != nil {
			res[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
		}
	}
	return res, scanner.Err()
}
