package cliente

import (
	"github.com/marcelsud/locadora-web/resource"
)

/* Repository is the cliente resource hook
 * resource.Client[Cliente, Create, Update] satisfies it
 */
type Repository interface {
	resource.Repository[Cliente, Create, Update]
}
