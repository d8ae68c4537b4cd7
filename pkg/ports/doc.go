/*
Package ports defines the capabilities the devconsole engine consumes and exposes.

The engine never owns the entries it resolves: a host supplies a Registry that
enumerates its nodes, and the engine hands a Frontend to every Action it invokes.

# Key Interfaces

  - Registry: the traversal protocol. Visit enumerates direct children; Lists nest.
  - Node, Property, Action, List: the three concrete entry shapes.
  - Frontend: the handle an Action receives (output plus the Resolver).
  - Resolver: the command resolution operations (read, write, invoke, search, ...).
  - ValueStore: optional backing storage for property values.
*/
package ports
