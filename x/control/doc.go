/*
Package control keeps the identity of the treasury controller.

The controller is a single address with exclusive rights to transfer the
control, recover assets and swap treasury funds. It is set at genesis to
the deploying agent and can be replaced only by the current controller.
*/
package control
