package vrml

// expandInstances drives prototype expansion to a fixed point. Each pass
// locates every currently visible usage and splices its expanded body in,
// applying replacements in descending offset order into a fresh buffer so
// lower-offset spans stay valid. A pass can expose usages that were
// nested inside a just-expanded body, so the text is re-scanned until a
// pass finds none.
//
// Termination for self- or mutually-referential prototypes is guaranteed
// solely by maxDepth: once the ceiling is hit, the partially expanded
// text is returned with an error-level diagnostic. Valid nestings deeper
// than the ceiling are truncated the same way.
func expandInstances(text string, reg *ProtoRegistry, cfg *Config, log *Logger) string {
	maxDepth := cfg.MaxExpansionDepth
	for depth := 0; depth < maxDepth; depth++ {
		instances := locateInstances(text, reg, log)
		if len(instances) == 0 {
			return text
		}
		log.Debug("expansion pass %d: %d usages", depth+1, len(instances))

		next := text
		for i := len(instances) - 1; i >= 0; i-- {
			inst := instances[i]
			if inst.def == nil {
				log.Error("usage at offset %d references an unregistered prototype; leaving it unexpanded", inst.start)
				continue
			}
			next = next[:inst.start] + inst.expand(log, cfg.StrictMode) + next[inst.end:]
		}
		text = next
	}

	if remaining := locateInstances(text, reg, log); len(remaining) > 0 {
		log.Error("%v", NewExpansionError(maxDepth,
			"prototype usages remain; returning partially expanded text"))
	}
	return text
}
