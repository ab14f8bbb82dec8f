package main

import (
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"mlib.com/keyval/containers/maps/hashbidimap"
)

var format = flag.StringP("format", "f", "text", "dump format of the final map: text, json or yaml")

func dump(m *hashbidimap.Map[string, string]) ([]byte, error) {
	switch *format {
	case "text":
		return []byte(m.String()), nil
	case "json":
		return m.ToJSON()
	case "yaml":
		return m.ToYAML()
	}
	return nil, fmt.Errorf("unsupported format %q", *format)
}

func main() {
	flag.Parse()

	m := hashbidimap.New[string, string]()

	for _, p := range [][2]string{
		{"Foo", "Bar"},
		{"Foo", "Bar"},
		{"Baz", "Bar"},
		{"Foo", "Baz"},
		{"Baz", "Baz"},
	} {
		if err := m.Insert(p[0], p[1]); err != nil {
			log.Printf("[D]insert(%s, %s) rejected:%v\n", p[0], p[1], err)
			fmt.Printf("insert(%q, %q) = %v\n", p[0], p[1], err)
			continue
		}
		fmt.Printf("insert(%q, %q) = ok\n", p[0], p[1])
	}
	fmt.Println()

	for _, s := range []string{"Foo", "Baz"} {
		v, ok := m.GetByKey(s)
		fmt.Printf("get_by_key(%q) = %q %v\n", s, v, ok)
	}
	for _, s := range []string{"Bar", "Baz"} {
		k, ok := m.GetByValue(s)
		fmt.Printf("get_by_val(%q) = %q %v\n", s, k, ok)
	}
	fmt.Println()

	out, err := dump(m)
	if err != nil {
		log.Printf("[E]dump map failed:%v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
