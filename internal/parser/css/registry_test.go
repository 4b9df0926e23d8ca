package css_test

import "bennypowers.dev/sasseval/internal/builtin"

var builtinRegistry = builtin.NewRegistry()
