// Package lineproc allows to build and execute line-rewrapping pipelines.
//
// # Concept
//
// The pipeline reads text records, rewrites them and prints the result as
// fixed-width lines. Processing is split into four stages:
//
//	Reader - reads records from the input;
//	Normalizer - replaces line terminators with spaces;
//	Rewriter - replaces every "++" with a marker character;
//	Formatter - re-wraps the character stream into lines of fixed width.
//
// Every stage is running in its own goroutine and stages are connected with
// bounded blocking queues. It is inspired with the pipeline pattern explained
// in the go blog https://blog.golang.org/pipelines.
//
// # Termination
//
// There is no cancellation. The pipeline stops when the "STOP" record is read:
// the sentinel line travels through all queues, every stage forwards it
// exactly once and exits. Characters that did not fill the last output line
// are dropped.
//
// # Components
//
// Stages are implemented by components. stdio.Source reads records from
// io.Reader, text.Normalizer and text.Rewriter transform them, stdio.Sink
// writes fixed-width lines into io.Writer. Components are instantiated with
// allocator functions:
//
//	SourceAllocatorFunc
//	ProcessorAllocatorFunc
//	SinkAllocatorFunc
//
// # Routing and binding
//
// To run the pipeline, one first need to build it:
//
//	p, err := lineproc.New(
//	    lineproc.DefaultConfig(),
//	    lineproc.Routing{
//	        Source: stdio.Source(os.Stdin),
//	        Processors: lineproc.Processors(
//	            text.Normalizer(),
//	            text.Rewriter(),
//	        ),
//	        Sink: stdio.Sink(os.Stdout),
//	    },
//	)
//
// # Execution
//
// Once pipe is built, it can be executed:
//
//	r, err := run.New(p, run.WithLogger(log.GetLogger(logrus.InfoLevel)))
//	if err != nil {
//	    // handle error
//	}
//	err = r.Wait()
//
// Wait blocks until all stages are done and returns the first error.
package lineproc
