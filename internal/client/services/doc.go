// Package services contains the application services behind the SnapHire
// menus: account signup and login (AuthService) and job postings
// (JobService). Both reach storage only through repositories.Store.
package services
